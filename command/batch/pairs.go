package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type pair struct {
	line   int
	first  string
	second string
}

// readPairs splits each non-blank line on its first tab. Lines are read
// whole, so there is no limit on their length.
func readPairs(r io.Reader) ([]pair, error) {
	br := bufio.NewReader(r)
	pairs := []pair{}

	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("error reading line %d: %w", line, err)
		}

		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
		if text != "" {
			first, second, found := strings.Cut(text, "\t")
			if !found {
				return nil, fmt.Errorf("line %d: expected two tab separated fields", line)
			}

			pairs = append(pairs, pair{line: line, first: first, second: second})
		}

		if err == io.EOF {
			return pairs, nil
		}
	}
}
