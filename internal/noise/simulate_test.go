package noise

import (
	"testing"

	"github.com/harlequix/hamming/internal/encoding"
	"github.com/stretchr/testify/require"
)

func TestSimulateSingleErrors(t *testing.T) {
	for _, reversed := range []bool{true, false} {
		r := require.New(t)
		stats, err := Simulate(Config{DataLen: 26, Iterations: 200, Errors: 1, Seed: 42, Reversed: reversed})
		r.NoError(err)
		r.Equal(200, stats.Outcomes[Recovered])
		r.Equal(1.0, stats.SuccessRate())
		r.Equal(200*31, stats.TotalBits)
		r.Equal(200, stats.TotalErrors)
		r.Equal(map[int]int{1: 200}, stats.ErrorDistribution)
	}
}

func TestSimulateDoubleErrorsNeverLookClean(t *testing.T) {
	r := require.New(t)
	stats, err := Simulate(Config{DataLen: 11, Iterations: 300, Errors: 2, Seed: 9})
	r.NoError(err)
	r.Zero(stats.Outcomes[Clean])
	r.Zero(stats.Outcomes[Undetected])
	r.Positive(stats.Outcomes[Miscorrected])
	r.Equal(300, stats.Outcomes[Recovered]+stats.Outcomes[Miscorrected])
}

func TestSimulateNoiselessChannel(t *testing.T) {
	r := require.New(t)
	stats, err := Simulate(Config{DataLen: 8, Iterations: 50, BER: 0, Seed: 1})
	r.NoError(err)
	r.Equal(50, stats.Outcomes[Clean])
	r.Zero(stats.AverageBER())
}

func TestSimulateIsReproducible(t *testing.T) {
	r := require.New(t)
	cfg := Config{DataLen: 16, Iterations: 100, BER: 0.05, Seed: 2024, Reversed: true}
	a, err := Simulate(cfg)
	r.NoError(err)
	b, err := Simulate(cfg)
	r.NoError(err)
	r.Equal(a, b)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{DataLen: 4, Iterations: 1, BER: 0.1}, nil},
		{"zero data", Config{DataLen: 0, Iterations: 1}, ErrDataLen},
		{"zero iterations", Config{DataLen: 4, Iterations: 0}, ErrIterations},
		{"bad BER", Config{DataLen: 4, Iterations: 1, BER: 2}, ErrInvalidBER},
		{"too many errors", Config{DataLen: 4, Iterations: 1, Errors: 8}, ErrTooManyErrors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		flips  int
		report encoding.Report
		want   Outcome
	}{
		{"clean", 0, encoding.Report{Data: "1011"}, Clean},
		{"recovered", 1, encoding.Report{Data: "1011", Syndrome: 3, Corrected: true}, Recovered},
		{"undetected", 3, encoding.Report{Data: "1111"}, Undetected},
		{"miscorrected", 2, encoding.Report{Data: "1111", Syndrome: 5, Corrected: true}, Miscorrected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := tt.report
			require.Equal(t, tt.want, Classify("1011", tt.flips, &report))
			require.Equal(t, tt.name, tt.want.String())
		})
	}
}
