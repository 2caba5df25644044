package alsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultCompressorConfig()
	assert.Equal(t, 10000, cfg.MaxRangeExpansion)
	assert.Equal(t, 3, cfg.MinRangeLength)
	assert.Equal(t, 4, cfg.MinToggleLength)
	assert.Equal(t, 3, cfg.DictMinOccurrences)
	assert.Equal(t, 3, cfg.DictMinLength)
	assert.Equal(t, 256, cfg.DictMaxSize)
	assert.Equal(t, 1.2, cfg.PatternRatioThreshold)
	assert.Equal(t, 4, cfg.MaxNestingDepth)
	assert.True(t, cfg.EnableCtxFallback)
}

func TestParserConfigProjection(t *testing.T) {
	cfg := DefaultCompressorConfig()
	cfg.MaxRangeExpansion = 5
	cfg.MaxNestingDepth = 2
	pc := cfg.ParserConfig()
	assert.Equal(t, 5, pc.MaxRangeExpansion)
	assert.Equal(t, 2, pc.MaxNestingDepth)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "als.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeTemp(t, `
max_range_expansion: 500
dict_max_size: 16
enable_ctx_fallback: false
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.MaxRangeExpansion)
	assert.Equal(t, 16, cfg.DictMaxSize)
	assert.False(t, cfg.EnableCtxFallback)
	// untouched keys keep their defaults
	assert.Equal(t, 3, cfg.MinRangeLength)
	assert.Equal(t, 1.2, cfg.PatternRatioThreshold)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeTemp(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultCompressorConfig(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var fileErr FileError
	require.ErrorAs(t, err, &fileErr)
	assert.True(t, os.IsNotExist(fileErr.Err))

	_, err = Load(writeTemp(t, "max_range_expansion: [not an int]"))
	require.ErrorAs(t, err, &fileErr)
}
