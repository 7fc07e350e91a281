package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
)

var hexCmd = &cobra.Command{
	Use:   "hex <hex>...",
	Short: "Expand hexadecimal strings into bits",
	Args:  cobra.MinimumNArgs(1),
	RunE:  hex,
}

func init() {
	rootCmd.AddCommand(hexCmd)
}

func hex(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		bits := encoding.HexToBinary(arg)
		if bits == "" {
			return fmt.Errorf("%w: %q is not hexadecimal", encoding.ErrInvalidInput, arg)
		}
		fmt.Fprintln(cmd.OutOrStdout(), bits)
	}
	return nil
}
