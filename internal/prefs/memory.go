package prefs

import (
	"context"
	"strconv"
)

// Memory is an in-process Settings store.
type Memory struct {
	values map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// GetBool implements Settings.
func (m *Memory) GetBool(_ context.Context, key string) (bool, bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, nil
	}
	return v, true, nil
}

// SetBool implements Settings.
func (m *Memory) SetBool(_ context.Context, key string, value bool) error {
	m.values[key] = strconv.FormatBool(value)
	return nil
}

// GetString implements Settings.
func (m *Memory) GetString(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// SetString implements Settings.
func (m *Memory) SetString(_ context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}
