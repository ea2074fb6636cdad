package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coltok/coltok/format"
)

func newDecodeCmd() *cobra.Command {
	var (
		snapshotPath string
		inputPath    string
	)

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode token sequences back into column values",
		Long: `Decode reads one token sequence per input line (tokens space-separated)
and writes one column value per output line. Sentinel tokens decode to their
sentinel strings; undecodable numeric sequences decode to NaN.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			dec, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}

			lines, err := readLines(inputPath)
			if err != nil {
				return err
			}

			sequences := make([][]int, len(lines))
			for i, line := range lines {
				seq, err := parseTokens(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				sequences[i] = seq
			}

			out := os.Stdout
			switch dec.TokenizerType() {
			case format.TypeNumeric:
				tok, err := dec.DecodeNumeric()
				if err != nil {
					return err
				}
				for _, v := range tok.DecodeSlice(sequences) {
					fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
				}
			case format.TypeCategorical:
				tok, err := dec.DecodeCategorical()
				if err != nil {
					return err
				}
				for i, seq := range sequences {
					if len(seq) != 1 {
						return fmt.Errorf("line %d: categorical decode expects exactly one token", i+1)
					}
					fmt.Fprintln(out, tok.Decode(seq[0]))
				}
			case format.TypeTimestamp:
				tok, err := dec.DecodeTimestamp()
				if err != nil {
					return err
				}
				for _, v := range tok.DecodeSlice(sequences) {
					fmt.Fprintln(out, v)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "tokenizer.snap", "Tokenizer snapshot path")
	cmd.Flags().StringVar(&inputPath, "input", "-", "Token sequences file, one per line ('-' for stdin)")

	return cmd
}
