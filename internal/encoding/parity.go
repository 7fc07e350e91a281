package encoding

import (
	"math/bits"
)

// Mode selects how the length handed to the indexer is interpreted.
type Mode int

const (
	// SizingForOutput treats the length as the data length; the set of
	// parity positions grows while it is discovered.
	SizingForOutput Mode = iota
	// SizingForInput treats the length as the final codeword length.
	SizingForInput
)

func (m Mode) String() string {
	switch m {
	case SizingForOutput:
		return "output"
	case SizingForInput:
		return "input"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "output", "encode":
		return SizingForOutput, nil
	case "input", "decode":
		return SizingForInput, nil
	default:
		return 0, ErrUnknownMode
	}
}

type Indexer interface {
	// ParityIndexes returns the 0-based indexes of parity positions in
	// ascending order.
	ParityIndexes(length int) []int
}

type OutputSizing struct{}

// ParityIndexes walks positions 1, 2, 3, ... over dataLen positions and
// extends the walk by one position for every parity position found, so
// the walk always spans the data plus the parity bits found so far.
func (OutputSizing) ParityIndexes(dataLen int) []int {
	out := []int{}
	limit := dataLen
	for pos := 1; pos <= limit; pos++ {
		if isParity(pos) {
			out = append(out, pos-1)
			limit++
		}
	}
	return out
}

type InputSizing struct{}

func (InputSizing) ParityIndexes(codeLen int) []int {
	out := []int{}
	for pos := 1; pos <= codeLen; pos++ {
		if isParity(pos) {
			out = append(out, pos-1)
		}
	}
	return out
}

func NewIndexer(mode Mode) Indexer {
	if mode == SizingForInput {
		return InputSizing{}
	}
	return OutputSizing{}
}

func ParityIndexes(length int, mode Mode) []int {
	return NewIndexer(mode).ParityIndexes(length)
}

// isParity reports whether the 1-based position is a power of two.
func isParity(pos int) bool {
	return pos > 0 && bits.OnesCount(uint(pos)) == 1
}

// paritySet marks the parity indexes of an n-position codeword.
func paritySet(n int, indexes []int) []bool {
	set := make([]bool, n)
	for _, idx := range indexes {
		if idx < n {
			set[idx] = true
		}
	}
	return set
}
