package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coltok/coltok/blob"
	"github.com/coltok/coltok/format"
	"github.com/coltok/coltok/internal/config"
	"github.com/coltok/coltok/tokenizer"
)

func newFitCmd() *cobra.Command {
	var (
		inputPath  string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a tokenizer on newline-delimited column values and write its snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			kind, err := config.ParseKind(activeCfg.Tokenizer.Kind)
			if err != nil {
				return err
			}
			compression, err := config.ParseCompression(activeCfg.Snapshot.Compression)
			if err != nil {
				return err
			}

			enc, err := blob.NewSnapshotEncoder(blob.WithSnapshotCompression(compression))
			if err != nil {
				return err
			}

			var data []byte
			switch kind {
			case format.TypeNumeric:
				data, err = fitNumeric(enc, inputPath)
			case format.TypeCategorical:
				data, err = fitCategorical(enc, inputPath)
			case format.TypeTimestamp:
				// Timestamp tokenizers are configuration-only; the snapshot
				// records the year bounds without reading any input.
				tok := tokenizer.NewTimestampTokenizer(
					activeCfg.Tokenizer.MinYear, activeCfg.Tokenizer.MaxYear,
					tokenizer.WithTimestampTokenOffset(activeCfg.Tokenizer.Offset))
				data, err = enc.EncodeTimestamp(tok)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return err
			}
			slog.Info("snapshot written",
				"kind", kind.String(), "compression", compression.String(),
				"path", outputPath, "bytes", len(data))

			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "-", "Column values file, one per line ('-' for stdin)")
	cmd.Flags().StringVar(&outputPath, "output", "tokenizer.snap", "Snapshot output path")

	return cmd
}

func fitNumeric(enc *blob.SnapshotEncoder, inputPath string) ([]byte, error) {
	lines, err := readLines(inputPath)
	if err != nil {
		return nil, err
	}
	values, err := parseFloats(lines)
	if err != nil {
		return nil, err
	}

	tok := tokenizer.NewNumericTokenizer(activeCfg.Tokenizer.NumBits,
		tokenizer.WithNumericTokenOffset(activeCfg.Tokenizer.Offset))
	tok.Fit(values)
	if !tok.Fitted() {
		return nil, fmt.Errorf("no values to fit on")
	}
	slog.Debug("numeric range fitted", "min", tok.Min(), "max", tok.Max())

	return enc.EncodeNumeric(tok)
}

func fitCategorical(enc *blob.SnapshotEncoder, inputPath string) ([]byte, error) {
	lines, err := readLines(inputPath)
	if err != nil {
		return nil, err
	}

	tok := tokenizer.NewCategoricalTokenizer(
		tokenizer.WithCategoricalTokenOffset(activeCfg.Tokenizer.Offset))
	tok.Fit(lines)
	if !tok.Fitted() {
		return nil, fmt.Errorf("no values to fit on")
	}
	slog.Debug("vocabulary built", "categories", tok.NumCategories())

	return enc.EncodeCategorical(tok)
}
