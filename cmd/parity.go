package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
)

var parityMode string

var parityCmd = &cobra.Command{
	Use:   "parity <length>",
	Short: "Print the 0-based parity indexes for a length",
	Long: `Print the 0-based indexes reserved for parity bits. With --mode output
the length is a data length and the parity bits it needs are included;
with --mode input the length is a full codeword length.`,
	Args: cobra.ExactArgs(1),
	RunE: parity,
}

func init() {
	parityCmd.Flags().StringVar(&parityMode, "mode", "output", "Sizing mode: output (data length) or input (codeword length)")
	rootCmd.AddCommand(parityCmd)
}

func parity(cmd *cobra.Command, args []string) error {
	length, err := strconv.Atoi(args[0])
	if err != nil || length < 0 {
		return fmt.Errorf("length must be a non-negative integer: %q", args[0])
	}
	mode, err := encoding.ParseMode(parityMode)
	if err != nil {
		return fmt.Errorf("%w: %q", err, parityMode)
	}
	indexes := encoding.ParityIndexes(length, mode)
	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = strconv.Itoa(idx)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
	return nil
}
