package encoding

import (
	log "github.com/harlequix/hamming/log"
)

// placeholder marks a parity position until its value is known.
const placeholder byte = 'P'

var logger = log.NewLogger("encoding")

// Encode interleaves parity bits into data at every power-of-two
// position and returns the codeword. With reversed set the last data
// bit lands on the lowest data position and the returned string starts
// with the highest codeword position.
func Encode(data string, reversed bool) string {
	parity := OutputSizing{}.ParityIndexes(len(data))
	n := len(data) + len(parity)
	dv := newView(len(data), reversed)
	cv := newView(n, reversed)
	isPar := paritySet(n, parity)

	word := make([]byte, n)
	for i, k := 0, 0; i < n; i++ {
		if isPar[i] {
			word[cv.index(i)] = placeholder
			continue
		}
		word[cv.index(i)] = data[dv.index(k)]
		k++
	}

	values := make([]byte, len(parity))
	for i, idx := range parity {
		values[i] = ZERO
		if coveredOnes(word, cv, idx+1, false)%2 == 1 {
			values[i] = ONE
		}
	}
	for i, idx := range parity {
		word[cv.index(idx)] = values[i]
	}
	logger.WithField("data", len(data)).WithField("parity", len(parity)).Trace("encoded")
	return string(word)
}

// Decode strips the parity positions from codeword. Parity values are
// not verified; use Correct for that.
func Decode(codeword string, reversed bool) string {
	n := len(codeword)
	cv := newView(n, reversed)
	isPar := paritySet(n, InputSizing{}.ParityIndexes(n))

	data := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		if isPar[i] {
			continue
		}
		data = append(data, codeword[cv.index(i)])
	}

	out := make([]byte, len(data))
	dv := newView(len(data), reversed)
	for k, b := range data {
		out[dv.index(k)] = b
	}
	return string(out)
}

// coveredOnes counts the ones at the positions covered by parity
// position p, i.e. every 1-based position q with q&p != 0.
func coveredOnes(word []byte, v view, p int, withSelf bool) int {
	count := 0
	for q := 1; q <= v.n; q++ {
		if q&p == 0 || (!withSelf && q == p) {
			continue
		}
		if word[v.index(q-1)] == ONE {
			count++
		}
	}
	return count
}

// Codec carries the bit order convention so that encode, decode and
// correct always agree on it.
type Codec struct {
	Reversed bool
}

func NewCodec(reversed bool) *Codec {
	return &Codec{Reversed: reversed}
}

func (c *Codec) Encode(data string) string {
	return Encode(data, c.Reversed)
}

func (c *Codec) Decode(codeword string) string {
	return Decode(codeword, c.Reversed)
}

func (c *Codec) Correct(codeword string) (string, error) {
	return Correct(codeword, c.Reversed)
}

func (c *Codec) Check(codeword string) (*Report, error) {
	return Check(codeword, c.Reversed)
}
