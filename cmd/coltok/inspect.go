package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coltok/coltok/format"
)

func newInspectCmd() *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe a tokenizer snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			dec, err := loadSnapshot(snapshotPath)
			if err != nil {
				return err
			}

			out := os.Stdout
			fmt.Fprintf(out, "kind: %s\n", dec.TokenizerType().String())
			fmt.Fprintf(out, "compression: %s\n", dec.CompressionType().String())

			switch dec.TokenizerType() {
			case format.TypeNumeric:
				tok, err := dec.DecodeNumeric()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "num_bits: %d\n", tok.NumBits())
				fmt.Fprintf(out, "offset: %d\n", tok.Offset())
				fmt.Fprintf(out, "fitted: %t\n", tok.Fitted())
				if tok.Fitted() {
					fmt.Fprintf(out, "min: %g\n", tok.Min())
					fmt.Fprintf(out, "max: %g\n", tok.Max())
					fmt.Fprintf(out, "resolution: %g\n", tok.Resolution())
				}
			case format.TypeCategorical:
				tok, err := dec.DecodeCategorical()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "offset: %d\n", tok.Offset())
				fmt.Fprintf(out, "fitted: %t\n", tok.Fitted())
				fmt.Fprintf(out, "categories: %d\n", tok.NumCategories())
				fmt.Fprintf(out, "token_space: %d\n", tok.TokenSpaceSize())
			case format.TypeTimestamp:
				tok, err := dec.DecodeTimestamp()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "min_year: %d\n", tok.MinYear())
				fmt.Fprintf(out, "max_year: %d\n", tok.MaxYear())
				fmt.Fprintf(out, "offset: %d\n", tok.Offset())
				fmt.Fprintf(out, "token_space: %d\n", tok.TokenSpaceSize())
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "snapshot", "tokenizer.snap", "Tokenizer snapshot path")

	return cmd
}
