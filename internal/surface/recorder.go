package surface

// Recorder is a Buffer that also keeps every text and visibility change, for tests.
type Recorder struct {
	Buffer
	Texts      []string
	Visibility []bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Buffer: Buffer{container: true}}
}

// SetText implements Surface.
func (r *Recorder) SetText(s string) {
	r.Buffer.SetText(s)
	r.Texts = append(r.Texts, s)
}

// SetContainerVisible implements Surface.
func (r *Recorder) SetContainerVisible(visible bool) {
	r.Buffer.SetContainerVisible(visible)
	r.Visibility = append(r.Visibility, visible)
}
