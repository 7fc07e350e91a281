package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harlequix/hamming/internal/noise"
)

func TestConfigFile(t *testing.T) {
	r := require.New(t)
	path := filepath.Join(t.TempDir(), "hamming.yaml")
	r.NoError(os.WriteFile(path, []byte("datalen: 21\nber: 0.2\n"), 0o644))

	r.NoError(SetConfig(path))
	c, err := LoadConfig()
	r.NoError(err)
	r.Equal(21, c.DataLen)
	r.Equal(0.2, c.BER)
	r.Equal(8, c.BlockLen)
	r.Equal(1000, c.Iterations)
	r.True(c.Reversed)
}

func TestConfigFileMissing(t *testing.T) {
	require.Error(t, SetConfig(filepath.Join(t.TempDir(), "missing.yaml")))
	require.NoError(t, SetConfig(""))
}

func TestSimulationConfig(t *testing.T) {
	r := require.New(t)
	c := &Config{DataLen: 4, Iterations: 3, BER: 0.5, Errors: 1, Seed: 9, Reversed: true, BlockLen: 8}
	sim, err := c.Simulation()
	r.NoError(err)
	r.Equal(noise.Config{DataLen: 4, Iterations: 3, BER: 0.5, Errors: 1, Seed: 9, Reversed: true}, sim)

	c.Iterations = 0
	_, err = c.Simulation()
	r.ErrorIs(err, noise.ErrIterations)
}
