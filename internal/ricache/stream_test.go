package ricache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/testutil"
)

func sphereRecord(radius float64) Record {
	return NewRecord("Sphere", func(r ri.Renderer) {
		r.Sphere(radius, -radius, radius, 360, nil)
	})
}

func translateRecord(dx float64) Record {
	return NewRecord("Translate", func(r ri.Renderer) {
		r.Translate(dx, 0, 0)
	})
}

func TestStream_ReplayInRecordedOrder(t *testing.T) {
	s := NewStream("ball")
	s.Append(translateRecord(5))
	s.Append(sphereRecord(1))
	require.Equal(t, 2, s.Len())

	rec := testutil.NewRecorder()
	s.Replay(rec)

	assert.Equal(t, []string{
		`Translate 5 0 0`,
		`Sphere 1 -1 1 360`,
	}, rec.Lines())
}

func TestStream_ReplayIsNonDestructive(t *testing.T) {
	s := NewStream("ball")
	s.Append(sphereRecord(2))

	rec := testutil.NewRecorder()
	s.Replay(rec)
	s.Replay(rec)

	assert.Equal(t, []string{
		`Sphere 2 -2 2 360`,
		`Sphere 2 -2 2 360`,
	}, rec.Lines(), "replay must leave the stream intact")
	assert.Equal(t, 1, s.Len())
}

func TestStream_NameNormalizedToNFC(t *testing.T) {
	// "cafe" + combining acute accent is the NFD spelling of "café".
	s := NewStream("cafe\u0301")
	assert.Equal(t, "caf\u00e9", s.Name())
}

func TestRecord_Name(t *testing.T) {
	rec := sphereRecord(1)
	assert.Equal(t, "Sphere", rec.Name())
}

func TestRegistry_LookupMissing(t *testing.T) {
	var reg Registry
	assert.Nil(t, reg.Lookup("nope"))
	assert.Equal(t, 0, reg.Len())
}

func TestRegistry_FirstMatchWins(t *testing.T) {
	var reg Registry
	first := NewStream("dup")
	first.Append(sphereRecord(1))
	second := NewStream("dup")
	second.Append(translateRecord(9))
	reg.Add(first)
	reg.Add(second)

	require.Equal(t, 2, reg.Len(), "duplicates are kept, not replaced")
	got := reg.Lookup("dup")
	require.NotNil(t, got)
	assert.Same(t, first, got, "earliest-inserted stream shadows later ones")
}

func TestRegistry_LookupNormalizesName(t *testing.T) {
	var reg Registry
	s := NewStream("caf\u00e9")
	reg.Add(s)

	got := reg.Lookup("cafe\u0301")
	require.NotNil(t, got, "NFD spelling must find the NFC-registered stream")
	assert.Same(t, s, got)
}
