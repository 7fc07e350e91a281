package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <codeword>...",
	Short: "Strip parity bits from codewords without checking them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  decode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func decode(cmd *cobra.Command, args []string) error {
	codec := encoding.NewCodec(cfg.Reversed)
	for _, arg := range args {
		if err := encoding.Validate(arg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.Decode(arg))
	}
	return nil
}
