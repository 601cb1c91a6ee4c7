// Package lcs finds the longest common substring of two sequences.
//
// Every alignment of the shorter input against the longer one is visited by
// rotating the longer input one position at a time, and the longest run of
// equal elements at each alignment is kept. This covers the same diagonals a
// dynamic programming table would, without allocating the table.
package lcs

import (
	"slices"

	"lcsubstr/util"
)

// LongestCommonSubstring returns one longest run of runes that appears
// contiguously in both first and second. When several runs tie, the first
// found in rotation order wins. It returns "" when the inputs share no rune.
func LongestCommonSubstring(first, second string) string {
	return string(Find([]rune(first), []rune(second)))
}

// Find is LongestCommonSubstring over any comparable element type. The
// returned slice never aliases either input.
func Find[T comparable](first, second []T) []T {
	short, long := second, first
	if len(first) <= len(second) {
		short, long = first, second
	}

	var best []T
	for shifts := range len(long) {
		if match := bestMatchAtAlignment(short, long, shifts); len(match) > len(best) {
			best = match
		}

		long = util.RotateRight(long)
	}

	return slices.Clone(best)
}

// bestMatchAtAlignment scans short against long, which has been rotated right
// shifts times, and returns the longest run of equal elements. Index shifts
// holds what was the first element of long, so a run never carries across it.
func bestMatchAtAlignment[T comparable](short, long []T, shifts int) []T {
	start, run := 0, 0
	bestStart, bestLen := 0, 0

	for i := range short {
		switch {
		case short[i] != long[i]:
			run = 0
		case i == shifts || run == 0:
			start, run = i, 1
		default:
			run++
		}

		if run > bestLen {
			bestStart, bestLen = start, run
		}
	}

	return short[bestStart : bestStart+bestLen]
}
