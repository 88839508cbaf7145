package board

import (
	"fmt"
	"strings"
)

// DecodeGivens expands a givens string into one clue per vertex in
// row-major order. Digits 0-4 are literal clues; letters a-z encode
// runs of 1-26 unclued vertices (NoClue entries). Any other rune is
// ErrMalformedGivens.
// Complexity: O(len(givens) + vertices) time and memory.
func DecodeGivens(givens string) ([]int, error) {
	clues := make([]int, 0, len(givens))
	for _, r := range givens {
		switch {
		case r >= '0' && r <= '4':
			clues = append(clues, int(r-'0'))
		case r >= 'a' && r <= 'z':
			run := int(r-'a') + 1
			for i := 0; i < run; i++ {
				clues = append(clues, NoClue)
			}
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ErrMalformedGivens, r)
		}
	}
	return clues, nil
}

// EncodeGivens is the inverse of DecodeGivens: clue values become
// digits, NoClue runs become letters in chunks of at most 26.
// Round-trips with DecodeGivens for any valid clue slice.
// Complexity: O(len(clues)) time and memory.
func EncodeGivens(clues []int) string {
	var sb strings.Builder
	unclued := 0
	flush := func() {
		for unclued > 0 {
			run := unclued
			if run > 26 {
				run = 26
			}
			sb.WriteByte(byte('a' + run - 1))
			unclued -= run
		}
	}
	for _, clue := range clues {
		if clue == NoClue {
			unclued++
			continue
		}
		flush()
		sb.WriteByte(byte('0' + clue))
	}
	flush()
	return sb.String()
}
