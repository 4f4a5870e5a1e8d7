package ricache

import "golang.org/x/text/unicode/norm"

// Registry is an ordered collection of streams. Insertion order is
// preserved and names are not deduplicated: Lookup returns the first
// (earliest-inserted) stream with a matching name, so later streams with a
// duplicate name are permanently shadowed. That tie-break is deliberate,
// not an error.
type Registry struct {
	streams []*Stream
}

// Add appends a stream to the registry.
func (reg *Registry) Add(s *Stream) {
	reg.streams = append(reg.streams, s)
}

// Lookup returns the first stream whose name matches, or nil. The name is
// NFC-normalized before comparison, matching NewStream.
//
// Lookup is a linear scan. Registries hold the handful of archives and
// objects defined by one scene, so scan cost is irrelevant; if that ever
// changes, a name-to-index map inserted only on first occurrence preserves
// the first-wins tie-break.
func (reg *Registry) Lookup(name string) *Stream {
	name = norm.NFC.String(name)
	for _, s := range reg.streams {
		if s.name == name {
			return s
		}
	}
	return nil
}

// Len returns the number of registered streams, counting duplicates.
func (reg *Registry) Len() int { return len(reg.streams) }
