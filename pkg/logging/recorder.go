package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// Recorder is a JSON logger whose output tests can inspect.
type Recorder struct {
	Logger *zerolog.Logger
	buf    *bytes.Buffer
}

// NewRecorder returns a Recorder that keeps every level, trace included.
func NewRecorder(t testing.TB) *Recorder {
	t.Helper()

	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	return &Recorder{Logger: &logger, buf: buf}
}

// RecordDefault installs a Recorder as the default logger until the test ends.
func RecordDefault(t testing.TB) *Recorder {
	t.Helper()

	prev := defaultLogger
	rec := NewRecorder(t)
	SetDefault(*rec.Logger)
	t.Cleanup(func() { SetDefault(prev) })
	return rec
}

// String returns the raw output.
func (r *Recorder) String() string {
	return r.buf.String()
}

// Entries decodes each recorded line. Lines that are not JSON are skipped.
func (r *Recorder) Entries() []map[string]any {
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(r.buf.String()), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Find returns the entries whose message is msg.
func (r *Recorder) Find(msg string) []map[string]any {
	var found []map[string]any
	for _, entry := range r.Entries() {
		if entry[zerolog.MessageFieldName] == msg {
			found = append(found, entry)
		}
	}
	return found
}
