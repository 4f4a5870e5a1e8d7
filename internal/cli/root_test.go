package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := make([]string, 0, 2)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "filter")
	assert.Contains(t, names, "fmt")
}

func TestRootCommand_RejectsInvalidFormat(t *testing.T) {
	input := writeFile(t, t.TempDir(), "scene.rib", "Sphere 1 -1 1 360\n")

	_, err := execute(t, "--format", "xml", "filter", input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
}
