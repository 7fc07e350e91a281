package format

import (
	"errors"
	"fmt"

	"github.com/harlequix/hamming/internal/encoding"
)

var (
	ErrBlockLen    = errors.New("block length must be positive")
	ErrFrameLength = errors.New("frame length does not split into codewords")
)

// Block is one data block and its codeword.
type Block struct {
	Data     string
	Codeword string
	// Report is set once the block went through correction.
	Report *encoding.Report
}

func NewBlock(data string, codec *encoding.Codec) *Block {
	return &Block{
		Data:     data,
		Codeword: codec.Encode(data),
	}
}

// ReceivedBlock wraps a codeword whose data is not known yet.
func ReceivedBlock(codeword string) *Block {
	return &Block{Codeword: codeword}
}

func (b *Block) Len() int {
	return len(b.Codeword)
}

func (b *Block) Ready() bool {
	return b.Report != nil
}

func (b *Block) String() string {
	if b.Report == nil {
		return b.Codeword
	}
	switch {
	case b.Report.Corrected:
		return fmt.Sprintf("%s (fixed position %d)", b.Codeword, b.Report.Syndrome)
	case b.Report.Syndrome != 0:
		return fmt.Sprintf("%s (syndrome %d out of range)", b.Codeword, b.Report.Syndrome)
	default:
		return b.Codeword
	}
}

// CodewordLen is the codeword length for dataLen data bits.
func CodewordLen(dataLen int) int {
	return dataLen + len(encoding.ParityIndexes(dataLen, encoding.SizingForOutput))
}

// DataLen inverts CodewordLen. ok is false when no data length encodes
// into exactly codeLen bits.
func DataLen(codeLen int) (int, bool) {
	k := codeLen - len(encoding.ParityIndexes(codeLen, encoding.SizingForInput))
	if k < 1 || CodewordLen(k) != codeLen {
		return 0, false
	}
	return k, true
}

// Split cuts bits into chunks of size; the last chunk may be shorter.
func Split(bits string, size int) []string {
	out := []string{}
	for index := 0; index < len(bits); index += size {
		end := index + size
		if end > len(bits) {
			end = len(bits)
		}
		out = append(out, bits[index:end])
	}
	return out
}
