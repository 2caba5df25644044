package cmd

import (
	"io"
	"os"
	"strings"
)

// readInput reads the full contents of path, or stdin when path is
// "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes content to path, or stdout when path is "-".
func writeOutput(path string, content []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

// format is one of the CLI's input/output formats.
type format string

const (
	formatCSV  format = "csv"
	formatJSON format = "json"
	formatALS  format = "als"
	formatSQL  format = "sql"
	formatAuto format = "auto"
)

// detectFormat guesses an input's format: extension first, then
// content sniffing.
func detectFormat(path string, content []byte) format {
	if path != "-" {
		switch {
		case strings.HasSuffix(path, ".csv"):
			return formatCSV
		case strings.HasSuffix(path, ".json"):
			return formatJSON
		case strings.HasSuffix(path, ".als"):
			return formatALS
		}
	}

	trimmed := strings.TrimLeft(string(content), " \t\r\n")
	switch {
	case strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{"):
		return formatJSON
	case strings.HasPrefix(trimmed, "!v") || strings.HasPrefix(trimmed, "!ctx") ||
		strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "$"):
		return formatALS
	default:
		return formatCSV
	}
}
