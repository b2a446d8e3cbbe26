package main

import (
	"os"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/spf13/cobra"
)

func newDecodeCommand(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode a raw scan result written by scan --dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return E.Cause(err, "read dump")
			}
			accessPoints, err := wireless.DecodeScan(content)
			if err != nil {
				return err
			}
			return writeAccessPoints(cmd.OutOrStdout(), accessPoints, options.JSON)
		},
	}
}
