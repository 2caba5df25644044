package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	alscsv "github.com/vippsas/als/adapters/csv"
	alsjson "github.com/vippsas/als/adapters/json"
	"github.com/vippsas/als/adapters/sqladapter"
	"github.com/vippsas/als/alsparse"
)

var (
	decompressInput  string
	decompressOutput string
	decompressFormat string
)

var decompressCmd = &cobra.Command{
	Use:   "decompress",
	Short: "Decompress ALS data to CSV or JSON format",
	RunE:  runDecompress,
}

func init() {
	decompressCmd.Flags().StringVarP(&decompressInput, "input", "i", "-", "input file ('-' for stdin)")
	decompressCmd.Flags().StringVarP(&decompressOutput, "output", "o", "-", "output file ('-' for stdout)")
	decompressCmd.Flags().StringVarP(&decompressFormat, "format", "f", "csv", "output format: csv, json, or sql")
}

func runDecompress(cmd *cobra.Command, args []string) error {
	log.WithField("request_id", requestID.String()).Debugf("decompressing %s to %s", decompressInput, decompressOutput)

	input, err := readInput(decompressInput)
	if err != nil {
		return err
	}
	if len(input) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: input is empty")
		}
		return writeOutput(decompressOutput, nil)
	}

	doc, err := alsparse.Parse(string(input), loadedCfg.ParserConfig())
	if err != nil {
		return err
	}
	tab, err := doc.Expand(loadedCfg.ParserConfig())
	if err != nil {
		return err
	}

	outFormat := format(decompressFormat)
	if outFormat == formatAuto {
		outFormat = formatCSV
	}

	var buf bytes.Buffer
	switch outFormat {
	case formatCSV:
		err = alscsv.Write(&buf, tab)
	case formatJSON:
		err = alsjson.Write(&buf, tab)
	case formatSQL:
		dsn, table, serr := splitSqlTarget(decompressOutput)
		if serr != nil {
			return serr
		}
		db, dialect, oerr := sqladapter.Open(dsn)
		if oerr != nil {
			return oerr
		}
		defer db.Close()
		if werr := sqladapter.WriteTable(cmdContext(), db, dialect, table, tab); werr != nil {
			return werr
		}
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d rows to %s\n", tab.RowCount, table)
		}
		return nil
	case formatALS:
		return errors.New("cannot decompress to ALS format; use csv, json, or sql as the output format")
	default:
		return fmt.Errorf("unsupported decompress output format: %s", outFormat)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(decompressOutput, buf.Bytes()); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Decompressed %d bytes to %d bytes\n", len(input), buf.Len())
	}
	return nil
}
