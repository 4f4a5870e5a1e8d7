package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strattonbrazil/aqsis/internal/testutil"
)

func TestDefaultChainConfig(t *testing.T) {
	cfg := DefaultChainConfig()
	require.Len(t, cfg.Stages, 2)
	assert.Equal(t, "validate", cfg.Stages[0].Kind)
	assert.Equal(t, "archive", cfg.Stages[1].Kind)
}

func TestLoadChainConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
stages:
  - kind: validate
  - kind: archive
    maxReplayDepth: 8
`), 0o644))

	cfg, err := LoadChainConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Stages, 2)
	assert.Equal(t, 8, cfg.Stages[1].MaxReplayDepth)
}

func TestLoadChainConfig_EmptyStages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stages: []\n"), 0o644))

	_, err := LoadChainConfig(path)
	assert.ErrorContains(t, err, "no stages")
}

func TestLoadChainConfig_MissingFile(t *testing.T) {
	_, err := LoadChainConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestBuildChain_UnknownStageKind(t *testing.T) {
	cfg := ChainConfig{Stages: []StageConfig{{Kind: "teleport"}}}
	_, err := BuildChain(cfg, testutil.NewRecorder())
	assert.ErrorContains(t, err, `unknown stage kind "teleport"`)
}

func TestBuildChain_StageOrderFollowsConfig(t *testing.T) {
	sink := testutil.NewRecorder()
	chain, err := BuildChain(DefaultChainConfig(), sink)
	require.NoError(t, err)

	// The validator is configured first, so it must be the head: a
	// mismatched end is dropped before the archive filter or sink sees it.
	in := chain.In()
	in.WorldBegin()
	in.AttributeEnd()
	in.WorldEnd()

	assert.Equal(t, []string{`WorldBegin`, `WorldEnd`}, sink.Lines())
}
