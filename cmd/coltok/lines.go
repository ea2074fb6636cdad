package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// readLines reads newline-delimited values from path, or from stdin when
// path is "-". Blank lines are kept: for categorical columns they mean
// missing values.
func readLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

// parseFloats converts lines to float64 values. Empty lines become NaN so
// they are skipped by the fit scan and unencodable on encode.
func parseFloats(lines []string) ([]float64, error) {
	values := make([]float64, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			values[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		values[i] = v
	}

	return values, nil
}

// parseTokens converts one space-separated line of integers to a token slice.
// A blank line is an empty sequence.
func parseTokens(line string) ([]int, error) {
	fields := strings.Fields(line)
	tokens := make([]int, len(fields))
	for i, field := range fields {
		tok, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", field, err)
		}
		tokens[i] = tok
	}

	return tokens, nil
}

// formatTokens renders a token slice as one space-separated line.
func formatTokens(tokens []int) string {
	fields := make([]string, len(tokens))
	for i, tok := range tokens {
		fields[i] = strconv.Itoa(tok)
	}

	return strings.Join(fields, " ")
}
