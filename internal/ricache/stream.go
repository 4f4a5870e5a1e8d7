// Package ricache provides in-memory capture and replay of scene
// description call sequences.
//
// A Stream is an append-only log of Records accumulated under a name while
// an archive or object definition is open. Replaying a stream re-invokes
// every recorded call, in original order, against an arbitrary receiver.
// Replay is non-destructive: the same stream may be replayed any number of
// times.
package ricache

import (
	"golang.org/x/text/unicode/norm"

	"github.com/strattonbrazil/aqsis/internal/ri"
)

// Record is the immutable capture of one request: the request name as a
// discriminant plus a closure over deep-copied arguments. Once appended to
// a Stream a record is never modified.
type Record struct {
	name   string
	invoke func(ri.Renderer)
}

// NewRecord captures one call. The invoke closure must close over copies
// of any slice or ParamList arguments; the stream owns them from then on.
func NewRecord(name string, invoke func(ri.Renderer)) Record {
	return Record{name: name, invoke: invoke}
}

// Name returns the request name the record captures.
func (rec Record) Name() string { return rec.name }

// Replay re-invokes the captured call against target.
func (rec Record) Replay(target ri.Renderer) { rec.invoke(target) }

// Stream is a named, ordered, append-only sequence of Records.
//
// A stream is append-only while its definition scope is open and read-only
// once the scope closes. The owning filter never reopens a closed stream
// for appending, though it may replay it repeatedly.
type Stream struct {
	name    string
	records []Record
}

// NewStream creates an empty stream. The name is NFC-normalized so that
// lookups are insensitive to Unicode encoding differences.
func NewStream(name string) *Stream {
	return &Stream{name: norm.NFC.String(name)}
}

// Name returns the normalized stream name. Names are not unique across a
// registry; Registry.Lookup resolves duplicates.
func (s *Stream) Name() string { return s.name }

// Len returns the number of recorded calls.
func (s *Stream) Len() int { return len(s.records) }

// Append adds a record to the end of the stream.
func (s *Stream) Append(rec Record) {
	s.records = append(s.records, rec)
}

// Replay invokes every record against target in recorded order, with no
// filtering or transformation. Nested scope delimiter records captured
// during recording are replayed literally.
func (s *Stream) Replay(target ri.Renderer) {
	for _, rec := range s.records {
		rec.Replay(target)
	}
}

// Records returns the recorded calls in order. The returned slice is the
// stream's own backing store; callers must not mutate it.
func (s *Stream) Records() []Record { return s.records }
