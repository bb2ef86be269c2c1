package main

import (
	"context"
	"testing"
	"time"

	"github.com/verte-zerg/dailyquotes/internal/config"
	"github.com/verte-zerg/dailyquotes/internal/model"
	"github.com/verte-zerg/dailyquotes/internal/prefs"
)

func TestFileDefaults(t *testing.T) {
	lang := "ru"
	off := false
	p, err := fileDefaults(config.FileConfig{Display: config.DisplayConfig{Lang: &lang, Animations: &off}})
	if err != nil {
		t.Fatalf("fileDefaults: %v", err)
	}
	if p.Language != model.Russian || p.Animations || !p.DarkTheme {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	bad := "de"
	if _, err := fileDefaults(config.FileConfig{Display: config.DisplayConfig{Lang: &bad}}); err == nil {
		t.Fatalf("expected error for unknown lang")
	}
}

func TestResolveRunConfigPrecedence(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("black", "false"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("type-ms", "25"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	ctx := context.Background()
	settings := prefs.NewMemory()
	if err := prefs.SaveLanguage(ctx, settings, model.Russian); err != nil {
		t.Fatalf("save language: %v", err)
	}

	fileLang := "en"
	typeMs := 99
	holdMs := 1200
	fileCfg := config.FileConfig{
		Display: config.DisplayConfig{Lang: &fileLang},
		Timing:  config.TimingConfig{TypeMs: &typeMs, HoldMs: &holdMs},
	}
	cfg, err := resolveRunConfig(ctx, cmd, fileCfg, settings)
	if err != nil {
		t.Fatalf("resolveRunConfig: %v", err)
	}
	if cfg.Prefs.Language != model.Russian {
		t.Fatalf("stored language should win over config, got %s", cfg.Prefs.Language)
	}
	if cfg.Prefs.DarkTheme {
		t.Fatalf("changed flag should win over defaults")
	}
	if cfg.Typewriter.Type != 25*time.Millisecond {
		t.Fatalf("changed flag should win over config, got %s", cfg.Typewriter.Type)
	}
	if cfg.Typewriter.HoldFull != 1200*time.Millisecond || cfg.Instant.Hold != 1200*time.Millisecond {
		t.Fatalf("config hold not applied: %+v %+v", cfg.Typewriter, cfg.Instant)
	}
}

func TestValidateTimingsRejectsZero(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.Flags().Set("fade-ms", "0"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if _, err := resolveRunConfig(context.Background(), cmd, config.FileConfig{}, prefs.NewMemory()); err == nil {
		t.Fatalf("expected error for zero fade-ms")
	}
}
