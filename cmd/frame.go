package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harlequix/hamming/internal/format"
)

var (
	frameBits   bool
	frameBlocks bool
	frameRaw    bool
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Carry a message as a sequence of fixed-size codewords",
}

var frameSendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Encode a text message (or bits with --bits) block by block",
	Args:  cobra.ExactArgs(1),
	RunE:  frameSend,
}

var frameReceiveCmd = &cobra.Command{
	Use:   "receive <stream>",
	Short: "Correct and decode a stream of concatenated codewords",
	Args:  cobra.ExactArgs(1),
	RunE:  frameReceive,
}

func init() {
	frameCmd.PersistentFlags().Int("block", 8, "Data bits per codeword")
	frameCmd.PersistentFlags().BoolVar(&frameBits, "bits", false, "Message is a bit string instead of text")
	viper.BindPFlag("BlockLen", frameCmd.PersistentFlags().Lookup("block"))

	frameSendCmd.Flags().BoolVar(&frameBlocks, "blocks", false, "Print one codeword per line")
	frameReceiveCmd.Flags().BoolVar(&frameRaw, "raw", false, "Strip parity without correcting")

	frameCmd.AddCommand(frameSendCmd)
	frameCmd.AddCommand(frameReceiveCmd)
	rootCmd.AddCommand(frameCmd)
}

func frameSend(cmd *cobra.Command, args []string) error {
	frame, err := format.NewFrame(cfg.BlockLen, cfg.Reversed)
	if err != nil {
		return err
	}
	if frameBits {
		err = frame.EncodeBits(args[0])
	} else {
		err = frame.EncodeText(args[0])
	}
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if frameBlocks {
		for _, codeword := range frame.Codewords() {
			fmt.Fprintln(out, codeword)
		}
		return nil
	}
	fmt.Fprintln(out, frame.Stream())
	return nil
}

func frameReceive(cmd *cobra.Command, args []string) error {
	frame, err := format.NewFrame(cfg.BlockLen, cfg.Reversed)
	if err != nil {
		return err
	}
	if err := frame.Receive(args[0]); err != nil {
		return err
	}
	if frameRaw {
		frame.Decode()
	} else {
		summary, err := frame.Correct()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "blocks=%d corrected=%d out_of_range=%d\n",
			summary.Blocks, summary.Corrected, summary.OutOfRange)
	}
	if frameBits {
		fmt.Fprintln(cmd.OutOrStdout(), frame.Bits())
		return nil
	}
	text, err := frame.Text()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
