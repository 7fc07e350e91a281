package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/internal/noise"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Measure correction outcomes over a noisy channel",
	Long: `Encode random data, flip bits with probability --ber (or exactly
--errors bits per codeword), correct the result and count how often the
data survived.`,
	Args: cobra.NoArgs,
	RunE: simulate,
}

func init() {
	flags := simulateCmd.Flags()
	flags.Int("datalen", 11, "Data bits per codeword")
	flags.Int("iterations", 1000, "Number of codewords to send")
	flags.Float64("ber", 0.01, "Bit error rate of the channel")
	flags.Int("errors", 0, "Flip exactly this many bits per codeword (overrides --ber)")
	flags.Int64("seed", 0, "Random seed, 0 picks one from the clock")

	viper.BindPFlag("DataLen", flags.Lookup("datalen"))
	viper.BindPFlag("Iterations", flags.Lookup("iterations"))
	viper.BindPFlag("BER", flags.Lookup("ber"))
	viper.BindPFlag("Errors", flags.Lookup("errors"))
	viper.BindPFlag("Seed", flags.Lookup("seed"))
	rootCmd.AddCommand(simulateCmd)
}

func simulate(cmd *cobra.Command, args []string) error {
	sim, err := cfg.Simulation()
	if err != nil {
		return err
	}
	stats, err := noise.Simulate(sim)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "iterations:   %d\n", stats.Iterations)
	fmt.Fprintf(out, "bits sent:    %d\n", stats.TotalBits)
	fmt.Fprintf(out, "bit errors:   %d (BER %.4f)\n", stats.TotalErrors, stats.AverageBER())
	for _, o := range []noise.Outcome{noise.Clean, noise.Recovered, noise.Miscorrected, noise.Undetected} {
		fmt.Fprintf(out, "%-13s %d\n", o.String()+":", stats.Outcomes[o])
	}
	fmt.Fprintf(out, "success rate: %.2f%%\n", stats.SuccessRate()*100)

	counts := make([]int, 0, len(stats.ErrorDistribution))
	for n := range stats.ErrorDistribution {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(out, "  %d errors: %d\n", n, stats.ErrorDistribution[n])
	}
	return nil
}
