// Package alsconfig holds the compressor and parser configuration
// structs plus YAML file loading for the CLI, following a
// load-then-default-fill shape.
package alsconfig

// CompressorConfig controls the encode-side knobs.
type CompressorConfig struct {
	MaxRangeExpansion     int
	MinRangeLength        int
	MinToggleLength       int
	DictMinOccurrences    int
	DictMinLength         int
	DictMaxSize           int
	PatternRatioThreshold float64
	MaxNestingDepth       int
	EnableCtxFallback     bool
}

// DefaultCompressorConfig returns the stock defaults.
func DefaultCompressorConfig() CompressorConfig {
	return CompressorConfig{
		MaxRangeExpansion:     10000,
		MinRangeLength:        3,
		MinToggleLength:       4,
		DictMinOccurrences:    3,
		DictMinLength:         3,
		DictMaxSize:           256,
		PatternRatioThreshold: 1.2,
		MaxNestingDepth:       4,
		EnableCtxFallback:     true,
	}
}

// ParserConfig controls the decode-side bounds; it is the subset of
// CompressorConfig the tokenizer/parser/expansion need.
type ParserConfig struct {
	MaxRangeExpansion int
	MaxNestingDepth   int
}

// DefaultParserConfig returns the stock defaults relevant to parsing
// and expansion.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		MaxRangeExpansion: 10000,
		MaxNestingDepth:   4,
	}
}

// ParserConfig projects the parsing-relevant fields out of a
// CompressorConfig, so a single loaded config can drive both the
// compressor facade and a standalone parser.
func (c CompressorConfig) ParserConfig() ParserConfig {
	return ParserConfig{
		MaxRangeExpansion: c.MaxRangeExpansion,
		MaxNestingDepth:   c.MaxNestingDepth,
	}
}
