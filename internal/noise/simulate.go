package noise

import (
	"errors"
	"fmt"

	"github.com/harlequix/hamming/internal/encoding"
)

var (
	ErrIterations = errors.New("iterations must be positive")
	ErrDataLen    = errors.New("data length must be positive")
)

type Config struct {
	DataLen    int
	Iterations int
	BER        float64
	// Errors flips exactly this many bits per codeword instead of
	// sampling with BER.
	Errors   int
	Seed     int64
	Reversed bool
}

func (c *Config) Validate() error {
	if c.DataLen <= 0 {
		return fmt.Errorf("%w: %d", ErrDataLen, c.DataLen)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: %d", ErrIterations, c.Iterations)
	}
	if c.BER < 0.0 || c.BER > 1.0 {
		return fmt.Errorf("%w: %.3f", ErrInvalidBER, c.BER)
	}
	if c.Errors < 0 || c.Errors > c.DataLen+len(encoding.ParityIndexes(c.DataLen, encoding.SizingForOutput)) {
		return fmt.Errorf("%w: %d", ErrTooManyErrors, c.Errors)
	}
	return nil
}

type Outcome int

const (
	Clean Outcome = iota
	// Recovered means the data came back intact despite bit errors.
	Recovered
	// Miscorrected means a nonzero syndrome pointed at the wrong bit.
	Miscorrected
	// Undetected means the errors cancelled out to a zero syndrome.
	Undetected
)

func (o Outcome) String() string {
	switch o {
	case Clean:
		return "clean"
	case Recovered:
		return "recovered"
	case Miscorrected:
		return "miscorrected"
	case Undetected:
		return "undetected"
	default:
		return "unknown"
	}
}

// Classify judges a correction of data after flips bit errors.
func Classify(data string, flips int, report *encoding.Report) Outcome {
	switch {
	case report.Data == data && flips == 0:
		return Clean
	case report.Data == data:
		return Recovered
	case report.Syndrome == 0:
		return Undetected
	default:
		return Miscorrected
	}
}

type Stats struct {
	Iterations        int
	TotalBits         int
	TotalErrors       int
	Outcomes          map[Outcome]int
	ErrorDistribution map[int]int
}

func (s *Stats) AverageBER() float64 {
	if s.TotalBits == 0 {
		return 0
	}
	return float64(s.TotalErrors) / float64(s.TotalBits)
}

// SuccessRate is the share of iterations whose data arrived intact.
func (s *Stats) SuccessRate() float64 {
	if s.Iterations == 0 {
		return 0
	}
	return float64(s.Outcomes[Clean]+s.Outcomes[Recovered]) / float64(s.Iterations)
}

// Simulate encodes random data, passes each codeword through a noisy
// channel and corrects it, cfg.Iterations times.
func Simulate(cfg Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	channel := NewChannel(cfg.Seed)
	codec := encoding.NewCodec(cfg.Reversed)
	stats := &Stats{
		Iterations:        cfg.Iterations,
		Outcomes:          make(map[Outcome]int),
		ErrorDistribution: make(map[int]int),
	}
	for i := 0; i < cfg.Iterations; i++ {
		data := channel.RandomBits(cfg.DataLen)
		codeword := codec.Encode(data)

		var result *Result
		var err error
		if cfg.Errors > 0 {
			result, err = channel.FlipN(codeword, cfg.Errors)
		} else {
			result, err = channel.Apply(codeword, cfg.BER)
		}
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}

		report, err := codec.Check(result.Noisy)
		if err != nil {
			return nil, fmt.Errorf("iteration %d: %w", i, err)
		}
		outcome := Classify(data, result.Errors(), report)
		stats.Outcomes[outcome]++
		stats.ErrorDistribution[result.Errors()]++
		stats.TotalBits += len(codeword)
		stats.TotalErrors += result.Errors()
		channel.log.WithField("iteration", i).WithField("outcome", outcome).Trace("simulated codeword")
	}
	channel.log.WithField("iterations", stats.Iterations).
		WithField("success", stats.SuccessRate()).
		Debug("simulation finished")
	return stats, nil
}
