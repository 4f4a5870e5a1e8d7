// Package testutil provides shared test helpers for the filter packages.
package testutil

import (
	"bytes"
	"strings"

	"github.com/strattonbrazil/aqsis/internal/ribout"
)

// Recorder captures a request stream as canonical RIB text for
// assertions. It is a ribout.Writer over an in-memory buffer, so tests
// compare streams by their serialized form instead of poking at call
// argument structs.
type Recorder struct {
	*ribout.Writer
	buf bytes.Buffer
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Writer = ribout.NewWriter(&r.buf)
	return r
}

// Text returns everything recorded so far.
func (r *Recorder) Text() string { return r.buf.String() }

// Lines returns the recorded requests one per entry, indentation
// stripped, with no trailing empty line.
func (r *Recorder) Lines() []string {
	raw := strings.Split(strings.TrimRight(r.buf.String(), "\n"), "\n")
	if len(raw) == 1 && raw[0] == "" {
		return nil
	}
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = strings.TrimLeft(l, " ")
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.buf.Reset()
	r.Writer = ribout.NewWriter(&r.buf)
}
