package alsconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileError wraps a failure to read or decode a configuration file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// fileConfig mirrors CompressorConfig with YAML tags and pointer
// fields so that an absent key leaves the corresponding default
// untouched; the core struct stays free of YAML tags.
type fileConfig struct {
	MaxRangeExpansion     *int     `yaml:"max_range_expansion"`
	MinRangeLength        *int     `yaml:"min_range_length"`
	MinToggleLength       *int     `yaml:"min_toggle_length"`
	DictMinOccurrences    *int     `yaml:"dict_min_occurrences"`
	DictMinLength         *int     `yaml:"dict_min_length"`
	DictMaxSize           *int     `yaml:"dict_max_size"`
	PatternRatioThreshold *float64 `yaml:"pattern_ratio_threshold"`
	MaxNestingDepth       *int     `yaml:"max_nesting_depth"`
	EnableCtxFallback     *bool    `yaml:"enable_ctx_fallback"`
}

// Load reads a YAML configuration file at path and overlays it on top
// of DefaultCompressorConfig. Load itself treats a missing file as an
// error; callers that want "absence is fine" check os.IsNotExist on
// the wrapped cause.
func Load(path string) (CompressorConfig, error) {
	cfg := DefaultCompressorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return CompressorConfig{}, FileError{Path: path, Err: err}
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return CompressorConfig{}, FileError{Path: path, Err: err}
	}

	if fc.MaxRangeExpansion != nil {
		cfg.MaxRangeExpansion = *fc.MaxRangeExpansion
	}
	if fc.MinRangeLength != nil {
		cfg.MinRangeLength = *fc.MinRangeLength
	}
	if fc.MinToggleLength != nil {
		cfg.MinToggleLength = *fc.MinToggleLength
	}
	if fc.DictMinOccurrences != nil {
		cfg.DictMinOccurrences = *fc.DictMinOccurrences
	}
	if fc.DictMinLength != nil {
		cfg.DictMinLength = *fc.DictMinLength
	}
	if fc.DictMaxSize != nil {
		cfg.DictMaxSize = *fc.DictMaxSize
	}
	if fc.PatternRatioThreshold != nil {
		cfg.PatternRatioThreshold = *fc.PatternRatioThreshold
	}
	if fc.MaxNestingDepth != nil {
		cfg.MaxNestingDepth = *fc.MaxNestingDepth
	}
	if fc.EnableCtxFallback != nil {
		cfg.EnableCtxFallback = *fc.EnableCtxFallback
	}

	return cfg, nil
}
