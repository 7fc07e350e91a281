package format

import (
	"fmt"
	"strings"

	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
)

// Frame carries a bit string as a sequence of independently encoded
// blocks of BlockLen data bits. The last block may be shorter.
type Frame struct {
	Blocks   []*Block
	BlockLen int
	codec    *encoding.Codec
	log      *log.Logger
}

type Summary struct {
	Blocks     int
	Corrected  int
	OutOfRange int
}

func NewFrame(blockLen int, reversed bool) (*Frame, error) {
	if blockLen <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBlockLen, blockLen)
	}
	return &Frame{
		Blocks:   []*Block{},
		BlockLen: blockLen,
		codec:    encoding.NewCodec(reversed),
		log:      log.NewLogger("frame"),
	}, nil
}

func (f *Frame) EncodeBits(bits string) error {
	if !encoding.IsBinary(bits) {
		return encoding.Validate(bits)
	}
	f.Blocks = f.Blocks[:0]
	for _, chunk := range Split(bits, f.BlockLen) {
		f.Blocks = append(f.Blocks, NewBlock(chunk, f.codec))
	}
	f.log.WithField("bits", len(bits)).WithField("blocks", len(f.Blocks)).Debug("encoded frame")
	return nil
}

func (f *Frame) EncodeText(text string) error {
	return f.EncodeBits(encoding.ToBinaryBytes(text))
}

// Receive splits a concatenation of codewords back into blocks. Every
// codeword but the last is CodewordLen(BlockLen) bits long.
func (f *Frame) Receive(stream string) error {
	if err := encoding.Validate(stream); err != nil {
		return err
	}
	full := CodewordLen(f.BlockLen)
	blocks := []*Block{}
	rest := stream
	for len(rest) > full {
		blocks = append(blocks, ReceivedBlock(rest[:full]))
		rest = rest[full:]
	}
	if _, ok := DataLen(len(rest)); !ok {
		return fmt.Errorf("%w: %d bits left after %d codewords of %d", ErrFrameLength, len(rest), len(blocks), full)
	}
	f.Blocks = append(blocks, ReceivedBlock(rest))
	return nil
}

// Correct runs every block through the corrector and fills in its data.
func (f *Frame) Correct() (*Summary, error) {
	summary := &Summary{Blocks: len(f.Blocks)}
	for i, block := range f.Blocks {
		report, err := f.codec.Check(block.Codeword)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		block.Report = report
		block.Data = report.Data
		switch {
		case report.Corrected:
			summary.Corrected++
			f.log.WithField("block", i).WithField("position", report.Syndrome).Debug("corrected block")
		case report.Syndrome != 0:
			summary.OutOfRange++
			f.log.WithField("block", i).WithField("syndrome", report.Syndrome).Warn("syndrome out of range")
		}
	}
	return summary, nil
}

// Decode strips parity from every block without checking it.
func (f *Frame) Decode() {
	for _, block := range f.Blocks {
		block.Data = f.codec.Decode(block.Codeword)
	}
}

func (f *Frame) Codewords() []string {
	out := make([]string, len(f.Blocks))
	for i, block := range f.Blocks {
		out[i] = block.Codeword
	}
	return out
}

// Stream concatenates all codewords.
func (f *Frame) Stream() string {
	return strings.Join(f.Codewords(), "")
}

func (f *Frame) Bits() string {
	var sb strings.Builder
	for _, block := range f.Blocks {
		sb.WriteString(block.Data)
	}
	return sb.String()
}

func (f *Frame) Text() (string, error) {
	return encoding.DecodeMessage(f.Bits())
}

func (f *Frame) String() string {
	lines := make([]string, len(f.Blocks))
	for i, block := range f.Blocks {
		lines[i] = block.String()
	}
	return strings.Join(lines, "\n")
}
