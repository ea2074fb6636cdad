package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coltok/coltok/blob"
	"github.com/coltok/coltok/format"
)

func newEncodeCmd() *cobra.Command {
	var (
		snapshotPath string
		inputPath    string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode newline-delimited column values into token sequences",
		Long: `Encode reads one column value per input line and writes one token
sequence per output line, tokens space-separated. Unencodable numeric values
produce an empty line; malformed timestamps produce the six sentinel tokens;
missing or unknown categories produce their sentinel token.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dec, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}

			lines, err := readLines(inputPath)
			if err != nil {
				return err
			}

			out := os.Stdout
			switch dec.TokenizerType() {
			case format.TypeNumeric:
				tok, err := dec.DecodeNumeric()
				if err != nil {
					return err
				}
				values, err := parseFloats(lines)
				if err != nil {
					return err
				}
				for _, seq := range tok.EncodeSlice(values) {
					fmt.Fprintln(out, formatTokens(seq))
				}
			case format.TypeCategorical:
				tok, err := dec.DecodeCategorical()
				if err != nil {
					return err
				}
				for _, token := range tok.EncodeSlice(lines) {
					fmt.Fprintln(out, strconv.Itoa(token))
				}
			case format.TypeTimestamp:
				tok, err := dec.DecodeTimestamp()
				if err != nil {
					return err
				}
				for _, seq := range tok.EncodeSlice(lines) {
					fmt.Fprintln(out, formatTokens(seq))
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "tokenizer.snap", "Tokenizer snapshot path")
	cmd.Flags().StringVar(&inputPath, "input", "-", "Column values file, one per line ('-' for stdin)")

	return cmd
}

func loadSnapshot(path string) (*blob.SnapshotDecoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return blob.NewSnapshotDecoder(data)
}
