package noise

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/harlequix/hamming/internal/encoding"
	log "github.com/harlequix/hamming/log"
)

var (
	ErrInvalidBER    = errors.New("BER must be between 0.0 and 1.0")
	ErrTooManyErrors = errors.New("more errors requested than bits available")
)

// Channel flips bits of binary strings. It owns its random source and is
// not safe for concurrent use.
type Channel struct {
	rng *rand.Rand
	log *log.Logger
}

// NewChannel returns a channel seeded with seed, or with the current
// time when seed is 0.
func NewChannel(seed int64) *Channel {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Channel{
		rng: rand.New(rand.NewSource(seed)),
		log: log.NewLogger("channel"),
	}
}

type Result struct {
	Original       string
	Noisy          string
	ErrorPositions []int
	ActualBER      float64
}

func (r *Result) Errors() int {
	return len(r.ErrorPositions)
}

// Apply flips every bit independently with probability ber.
func (c *Channel) Apply(bits string, ber float64) (*Result, error) {
	if ber < 0.0 || ber > 1.0 {
		return nil, fmt.Errorf("%w: %.3f", ErrInvalidBER, ber)
	}
	if err := encoding.Validate(bits); err != nil {
		return nil, err
	}
	positions := []int{}
	for i := 0; i < len(bits); i++ {
		if c.rng.Float64() < ber {
			positions = append(positions, i)
		}
	}
	return c.flip(bits, positions), nil
}

// FlipN flips exactly n distinct bits chosen uniformly.
func (c *Channel) FlipN(bits string, n int) (*Result, error) {
	if err := encoding.Validate(bits); err != nil {
		return nil, err
	}
	if n < 0 || n > len(bits) {
		return nil, fmt.Errorf("%w: %d of %d", ErrTooManyErrors, n, len(bits))
	}
	positions := c.rng.Perm(len(bits))[:n]
	sort.Ints(positions)
	return c.flip(bits, positions), nil
}

func (c *Channel) flip(bits string, positions []int) *Result {
	noisy := bits
	for _, pos := range positions {
		noisy = encoding.Flip(noisy, pos)
	}
	c.log.WithField("bits", len(bits)).WithField("errors", len(positions)).Trace("applied noise")
	return &Result{
		Original:       bits,
		Noisy:          noisy,
		ErrorPositions: positions,
		ActualBER:      float64(len(positions)) / float64(len(bits)),
	}
}

// RandomBits draws n uniformly distributed bits.
func (c *Channel) RandomBits(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = encoding.ZERO + byte(c.rng.Intn(2))
	}
	return string(out)
}
