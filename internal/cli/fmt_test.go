package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmt_CanonicalizesToStdout(t *testing.T) {
	input := writeFile(t, t.TempDir(), "messy.rib",
		"WorldBegin   Sphere 1.0 -1.0 1.0 360.0\n  WorldEnd\n")

	out, err := execute(t, "fmt", input)

	require.NoError(t, err)
	assert.Equal(t, "WorldBegin\n    Sphere 1 -1 1 360\nWorldEnd\n", out)
}

func TestFmt_WriteRewritesInPlace(t *testing.T) {
	input := writeFile(t, t.TempDir(), "messy.rib",
		"AttributeBegin Color [1 0 0] AttributeEnd\n")

	out, err := execute(t, "fmt", "-w", input)

	require.NoError(t, err)
	assert.Empty(t, out, "in-place mode prints nothing")

	got, rerr := os.ReadFile(input)
	require.NoError(t, rerr)
	assert.Equal(t, "AttributeBegin\n    Color [1 0 0]\nAttributeEnd\n", string(got))
}

func TestFmt_StreamErrorsSetExitFailure(t *testing.T) {
	input := writeFile(t, t.TempDir(), "bad.rib", "Bogus 1 2 3\n")

	_, err := execute(t, "fmt", input)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestFmt_MissingFileIsCommandError(t *testing.T) {
	_, err := execute(t, "fmt", "absent.rib")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
