package main

import (
	"os"

	sing "github.com/sagernet/sing-wireless"
	"github.com/sagernet/sing-wireless/common/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = log.NewLogger("wapi")

func main() {
	err := newCommand(new(Options)).Execute()
	if err != nil {
		logrus.Fatal(err)
	}
}

func newCommand(options *Options) *cobra.Command {
	command := &cobra.Command{
		Use:           "wapi",
		Short:         "Linux wireless extensions tool",
		Version:       sing.VersionStr,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := options.Load()
			if err != nil {
				return err
			}
			log.SetVerbose(options.Verbose)
			return nil
		},
	}
	command.PersistentFlags().StringVarP(&options.ConfigPath, "config", "c", "", "Use a configuration file.")
	command.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", false, "Enable verbose mode.")
	command.PersistentFlags().BoolVar(&options.JSON, "json", false, "Write results as JSON.")
	command.AddCommand(
		newIfnamesCommand(options),
		newInfoCommand(options),
		newSetCommand(options),
		newScanCommand(options),
		newDecodeCommand(options),
	)
	command.SetOut(os.Stdout)
	return command
}

// warnUnprivileged notes that requests needing CAP_NET_ADMIN will likely be refused.
// The kernel still decides.
func warnUnprivileged(operation string) {
	if os.Geteuid() != 0 {
		logger.Warn(operation, " usually requires root or CAP_NET_ADMIN")
	}
}
