package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the root command with args and returns stdout and the
// command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const archiveScene = `ArchiveBegin "ball"
Translate 0 0 5
Sphere 1 -1 1 360
ArchiveEnd
ReadArchive "ball"
ReadArchive "ball"
`

func TestFilter_SingleFileToStdout(t *testing.T) {
	input := writeFile(t, t.TempDir(), "scene.rib", archiveScene)

	out, err := execute(t, "filter", input)

	require.NoError(t, err)
	assert.Equal(t, "Translate 0 0 5\n"+
		"Sphere 1 -1 1 360\n"+
		"Translate 0 0 5\n"+
		"Sphere 1 -1 1 360\n", out)
}

func TestFilter_StreamErrorsSetExitFailure(t *testing.T) {
	input := writeFile(t, t.TempDir(), "bad.rib", "ObjectInstance \"ghost\"\n")

	_, err := execute(t, "filter", input)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestFilter_MissingInputIsCommandError(t *testing.T) {
	_, err := execute(t, "filter", filepath.Join(t.TempDir(), "absent.rib"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFilter_MultipleFilesWriteDerivedOutputs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.rib", archiveScene)
	b := writeFile(t, dir, "b.rib", "Sphere 2 -2 2 360\n")

	_, err := execute(t, "filter", a, b)
	require.NoError(t, err)

	got, rerr := os.ReadFile(filepath.Join(dir, "b.filtered.rib"))
	require.NoError(t, rerr)
	assert.Equal(t, "Sphere 2 -2 2 360\n", string(got))

	_, serr := os.Stat(filepath.Join(dir, "a.filtered.rib"))
	assert.NoError(t, serr)
}

func TestFilter_ExplicitOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "scene.rib", "Sphere 1 -1 1 360\n")
	outPath := filepath.Join(dir, "rewritten.rib")

	_, err := execute(t, "filter", "-o", outPath, input)
	require.NoError(t, err)

	got, rerr := os.ReadFile(outPath)
	require.NoError(t, rerr)
	assert.Equal(t, "Sphere 1 -1 1 360\n", string(got))
}

func TestFilter_CustomChainConfig(t *testing.T) {
	dir := t.TempDir()
	// An archive that reads itself; a tight replay limit keeps the run
	// short and the error observable.
	input := writeFile(t, dir, "loop.rib", `ArchiveBegin "loop"
ReadArchive "loop"
ArchiveEnd
ReadArchive "loop"
`)
	chain := writeFile(t, dir, "chain.yaml", `
stages:
  - kind: archive
    maxReplayDepth: 2
`)

	_, err := execute(t, "filter", "--chain", chain, input)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestFilter_BadChainConfigIsCommandError(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "scene.rib", "Sphere 1 -1 1 360\n")
	chain := writeFile(t, dir, "chain.yaml", "stages:\n  - kind: teleport\n")

	_, err := execute(t, "filter", "--chain", chain, input)

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestOutputPath(t *testing.T) {
	opts := &FilterOptions{}
	assert.Equal(t, "scenes/a.filtered.rib", outputPath(opts, "scenes/a.rib", 1))

	opts.Output = "out.rib"
	assert.Equal(t, "out.rib", outputPath(opts, "scenes/a.rib", 1))

	opts.Output = "build"
	assert.Equal(t, filepath.Join("build", "a.filtered.rib"), outputPath(opts, "scenes/a.rib", 2))
}
