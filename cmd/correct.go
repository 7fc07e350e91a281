package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlequix/hamming/internal/encoding"
)

var correctReport bool

var correctCmd = &cobra.Command{
	Use:   "correct <codeword>...",
	Short: "Fix at most one flipped bit per codeword and print the data",
	Long: `Compute the syndrome of every codeword, flip the bit it points at and
print the data bits. Two or more flipped bits are not detected reliably:
they either pass unnoticed or flip the wrong bit.`,
	Args: cobra.MinimumNArgs(1),
	RunE: correct,
}

func init() {
	correctCmd.Flags().BoolVar(&correctReport, "report", false, "Also print syndrome and corrected codeword")
	rootCmd.AddCommand(correctCmd)
}

func correct(cmd *cobra.Command, args []string) error {
	codec := encoding.NewCodec(cfg.Reversed)
	out := cmd.OutOrStdout()
	for _, arg := range args {
		report, err := codec.Check(arg)
		if err != nil {
			return err
		}
		if !correctReport {
			fmt.Fprintln(out, report.Data)
			continue
		}
		fmt.Fprintf(out, "data=%s codeword=%s syndrome=%d corrected=%v\n",
			report.Data, report.Codeword, report.Syndrome, report.Corrected)
	}
	return nil
}
