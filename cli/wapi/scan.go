package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/spf13/cobra"
)

func newScanCommand(options *Options) *cobra.Command {
	command := &cobra.Command{
		Use:   "scan [interface]",
		Short: "Scan for access points",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := options.InterfaceName(args)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			ctx, cancel = context.WithTimeout(ctx, options.ScanTimeout())
			defer cancel()
			warnUnprivileged("scanning")
			accessPoints, err := runScan(ctx, name, options)
			if err != nil {
				return err
			}
			return writeAccessPoints(cmd.OutOrStdout(), accessPoints, options.JSON)
		},
	}
	command.Flags().DurationVar((*time.Duration)(&options.PollInterval), "interval", 0, "Polling interval while the driver scans (default 250ms).")
	command.Flags().DurationVar((*time.Duration)(&options.Timeout), "timeout", 0, "Give up after this long (default 30s).")
	command.Flags().IntVar(&options.BufferSize, "buffer-size", 0, "Initial result buffer size in bytes (default 4096).")
	command.Flags().IntVar(&options.MaxBufferSize, "max-buffer-size", 0, "Largest result buffer in bytes (default and maximum 65535).")
	command.Flags().StringVar(&options.DumpPath, "dump", "", "Write the raw scan result to a file, for wapi decode.")
	command.Flags().BoolVar(&options.NL80211, "nl80211", false, "Scan through nl80211 instead of wireless extensions.")
	return command
}

func runScan(ctx context.Context, name string, options *Options) ([]wireless.AccessPoint, error) {
	if options.NL80211 {
		if options.DumpPath != "" {
			return nil, E.New("--dump needs a wireless extensions scan")
		}
		return wireless.ScanNL80211(ctx, name)
	}
	scanOptions, err := options.ScanOptions()
	if err != nil {
		return nil, err
	}
	if options.DumpPath != "" {
		dumpFile, err := os.Create(options.DumpPath)
		if err != nil {
			return nil, E.Cause(err, "create dump file")
		}
		defer dumpFile.Close()
		scanOptions.DumpWriter = dumpFile
	}
	device, err := wireless.Open(name)
	if err != nil {
		return nil, err
	}
	defer device.Close()
	return wireless.WaitScan(ctx, device, scanOptions, options.PollInterval.Build())
}
