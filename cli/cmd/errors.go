package cmd

import "github.com/vippsas/als/alserr"

// ExitCode maps an ALS core error to the process exit code: 1 for
// user/syntax errors, 2 for overflow or unexpected internal errors.
// Cobra already prints err.Error(), so this is just the code lookup.
func ExitCode(err error) int {
	switch err.(type) {
	case alserr.CsvParseError, alserr.JsonParseError, alserr.AlsSyntaxError,
		alserr.InvalidDictRef, alserr.ColumnMismatch, alserr.VersionMismatch:
		return 1
	case alserr.RangeOverflow, alserr.IoError, alserr.SqlError:
		return 2
	default:
		return 2
	}
}
