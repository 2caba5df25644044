package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	alscsv "github.com/vippsas/als/adapters/csv"
	alsjson "github.com/vippsas/als/adapters/json"
	"github.com/vippsas/als/adapters/sqladapter"
	"github.com/vippsas/als/alscompress"
	"github.com/vippsas/als/alsparse"
	"github.com/vippsas/als/alsval"
)

var (
	compressInput  string
	compressOutput string
	compressFormat string
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Compress CSV or JSON data to ALS format",
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringVarP(&compressInput, "input", "i", "-", "input file ('-' for stdin)")
	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "-", "output file ('-' for stdout)")
	compressCmd.Flags().StringVarP(&compressFormat, "format", "f", "auto", "input format: csv, json, sql, or auto")
}

func runCompress(cmd *cobra.Command, args []string) error {
	log.WithField("request_id", requestID.String()).Debugf("compressing %s to %s", compressInput, compressOutput)

	if format(compressFormat) == formatSQL {
		return compressFromSQL()
	}

	input, err := readInput(compressInput)
	if err != nil {
		return err
	}
	if len(input) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), "Warning: input is empty")
		}
		return writeOutput(compressOutput, nil)
	}

	f := format(compressFormat)
	if f == formatAuto {
		f = detectFormat(compressInput, input)
	}

	var tab alsval.TabularData
	switch f {
	case formatCSV:
		tab, err = alscsv.Read(bytesReader(input))
	case formatJSON:
		tab, err = alsjson.Read(bytesReader(input))
	case formatALS:
		return errors.New("input is already in ALS format; use the decompress command instead")
	default:
		return fmt.Errorf("unsupported compress input format: %s", f)
	}
	if err != nil {
		return err
	}

	doc, err := alscompress.Compress(tab, loadedCfg)
	if err != nil {
		return err
	}
	out := alsparse.Serialize(doc)

	if err := writeOutput(compressOutput, []byte(out)); err != nil {
		return err
	}

	if !quiet {
		ratio := float64(len(input)) / float64(max(len(out), 1))
		fmt.Fprintf(cmd.ErrOrStderr(), "Compressed %d bytes to %d bytes (ratio: %.2fx)\n",
			len(input), len(out), ratio)
	}
	return nil
}

// compressFromSQL reads compressInput as a "<dsn>;table=<name>" pair,
// compresses the table, and writes ALS text to compressOutput.
func compressFromSQL() error {
	dsn, table, err := splitSqlTarget(compressInput)
	if err != nil {
		return err
	}
	db, _, err := sqladapter.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	tab, err := sqladapter.ReadQuery(cmdContext(), db, "select * from "+table)
	if err != nil {
		return err
	}
	doc, err := alscompress.Compress(tab, loadedCfg)
	if err != nil {
		return err
	}
	return writeOutput(compressOutput, []byte(alsparse.Serialize(doc)))
}
