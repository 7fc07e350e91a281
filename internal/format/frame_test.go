package format

import (
	"testing"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestCodewordLen(t *testing.T) {
	r := require.New(t)
	r.Equal(3, CodewordLen(1))
	r.Equal(7, CodewordLen(4))
	r.Equal(11, CodewordLen(7))
	r.Equal(12, CodewordLen(8))
	r.Equal(15, CodewordLen(11))
	r.Equal(17, CodewordLen(12))
}

func TestDataLen(t *testing.T) {
	r := require.New(t)
	for k := 1; k <= 100; k++ {
		got, ok := DataLen(CodewordLen(k))
		r.True(ok)
		r.Equal(k, got)
	}
	for _, n := range []int{0, 1, 2, 4, 8, 16} {
		_, ok := DataLen(n)
		r.False(ok, "codeword length %d", n)
	}
}

func TestSplit(t *testing.T) {
	r := require.New(t)
	r.Equal([]string{"101", "100", "1"}, Split("1011001", 3))
	r.Equal([]string{"1011001"}, Split("1011001", 8))
	r.Equal([]string{}, Split("", 4))
}

func TestNewFrameRejectsBlockLen(t *testing.T) {
	_, err := NewFrame(0, true)
	require.ErrorIs(t, err, ErrBlockLen)
}

func TestFrameTextRoundTrip(t *testing.T) {
	for _, reversed := range []bool{true, false} {
		r := require.New(t)
		tx, err := NewFrame(8, reversed)
		r.NoError(err)
		r.NoError(tx.EncodeText("Hello World!"))
		r.Len(tx.Blocks, 12)

		rx, err := NewFrame(8, reversed)
		r.NoError(err)
		r.NoError(rx.Receive(tx.Stream()))
		r.Equal(tx.Codewords(), rx.Codewords())

		summary, err := rx.Correct()
		r.NoError(err)
		r.Equal(&Summary{Blocks: 12}, summary)

		text, err := rx.Text()
		r.NoError(err)
		r.Equal("Hello World!", text)
	}
}

func TestFrameCorrectsOneErrorPerBlock(t *testing.T) {
	r := require.New(t)
	tx, err := NewFrame(7, true)
	r.NoError(err)
	r.NoError(tx.EncodeBits("10110011011001101"))
	r.Len(tx.Blocks, 3)
	r.Equal("10101001110", tx.Blocks[0].Codeword)

	stream := []byte(tx.Stream())
	// one error in each of the three codewords
	for _, i := range []int{4, 11 + 2, 22 + 1} {
		stream[i] ^= 1
	}

	rx, err := NewFrame(7, true)
	r.NoError(err)
	r.NoError(rx.Receive(string(stream)))
	summary, err := rx.Correct()
	r.NoError(err)
	r.Equal(3, summary.Corrected)
	r.Equal("10110011011001101", rx.Bits())
	for _, block := range rx.Blocks {
		r.True(block.Ready())
		r.Contains(block.String(), "fixed position")
	}
}

func TestFrameDecodeSkipsCorrection(t *testing.T) {
	r := require.New(t)
	tx, err := NewFrame(4, false)
	r.NoError(err)
	r.NoError(tx.EncodeBits("10110"))
	r.Equal([]string{"0110011", "000"}, tx.Codewords())

	rx, err := NewFrame(4, false)
	r.NoError(err)
	r.NoError(rx.Receive(encoding.Flip(tx.Stream(), 0)))
	rx.Decode()
	r.Equal("10110", rx.Bits())
	r.False(rx.Blocks[0].Ready())
}

func TestFrameReceiveRejectsBadStreams(t *testing.T) {
	r := require.New(t)
	f, err := NewFrame(8, true)
	r.NoError(err)
	r.ErrorIs(f.Receive("1012"), encoding.ErrInvalidInput)
	r.ErrorIs(f.Receive(""), encoding.ErrInvalidInput)
	// 12 + 4 bits: a 4 bit tail is no codeword
	r.ErrorIs(f.Receive("0000000000000000"), ErrFrameLength)
	r.ErrorIs(f.EncodeBits("10x"), encoding.ErrInvalidInput)
}
