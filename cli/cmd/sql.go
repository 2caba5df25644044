package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// splitSqlTarget parses the "<dsn>;table=<name>" form --format sql
// takes, e.g. "postgres://localhost/db;table=readings".
func splitSqlTarget(target string) (dsn, table string, err error) {
	parts := strings.SplitN(target, ";table=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("sql target %q must be '<dsn>;table=<name>'", target)
	}
	return parts[0], parts[1], nil
}

func bytesReader(b []byte) *bytes.Reader { return bytes.NewReader(b) }

func cmdContext() context.Context { return context.Background() }
