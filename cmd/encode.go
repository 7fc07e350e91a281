package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
)

var encodeHex bool

var encodeCmd = &cobra.Command{
	Use:   "encode <bits>...",
	Short: "Encode data bits into Hamming codewords",
	Long: `Encode every argument into a codeword and print one codeword per line.
With --hex the arguments are hexadecimal (optional 0x prefix) and are
expanded to 4 bits per digit first.`,
	Example: "  hamming encode 1011001\n  hamming encode --hex 0xA",
	Args:    cobra.MinimumNArgs(1),
	RunE:    encode,
}

func init() {
	encodeCmd.Flags().BoolVar(&encodeHex, "hex", false, "Arguments are hexadecimal")
	rootCmd.AddCommand(encodeCmd)
}

func encode(cmd *cobra.Command, args []string) error {
	codec := encoding.NewCodec(cfg.Reversed)
	for _, arg := range args {
		data := arg
		if encodeHex {
			data = encoding.HexToBinary(arg)
			if data == "" {
				return fmt.Errorf("%w: %q is not hexadecimal", encoding.ErrInvalidInput, arg)
			}
		}
		if err := encoding.Validate(data); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(data))
	}
	return nil
}
