package main

import (
	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type setFlags struct {
	Frequency   string
	FreqFixed   bool
	ESSID       string
	ESSIDOff    bool
	Mode        string
	AccessPoint string
	Bitrate     string
	BitrateAuto bool
	TxPower     int
	TxPowerUnit string
}

func newSetCommand(options *Options) *cobra.Command {
	flags := new(setFlags)
	command := &cobra.Command{
		Use:   "set [interface]",
		Short: "Change the wireless settings of an interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := options.InterfaceName(args)
			if err != nil {
				return err
			}
			warnUnprivileged("changing wireless settings")
			device, err := wireless.Open(name)
			if err != nil {
				return err
			}
			defer device.Close()
			return applySettings(device, flags, cmd.Flags().Changed)
		},
	}
	command.Flags().StringVar(&flags.Frequency, "freq", "", "Set the frequency, in Hz with an optional SI prefix (2.412G), or a channel number.")
	command.Flags().BoolVar(&flags.FreqFixed, "freq-fixed", false, "Lock the frequency instead of letting the driver pick.")
	command.Flags().StringVar(&flags.ESSID, "essid", "", "Set the network name.")
	command.Flags().BoolVar(&flags.ESSIDOff, "essid-off", false, "Disable the ESSID check (associate with any network).")
	command.Flags().StringVar(&flags.Mode, "mode", "", "Set the operating mode (auto, ad-hoc, managed, master, repeat, second, monitor, mesh).")
	command.Flags().StringVar(&flags.AccessPoint, "ap", "", "Set the access point address, or any/off.")
	command.Flags().StringVar(&flags.Bitrate, "bitrate", "", "Set the bitrate in b/s with an optional SI prefix (54M).")
	command.Flags().BoolVar(&flags.BitrateAuto, "bitrate-auto", false, "Let the driver choose rates up to the given bitrate.")
	command.Flags().IntVar(&flags.TxPower, "txpower", 0, "Set the transmit power.")
	command.Flags().StringVar(&flags.TxPowerUnit, "txpower-unit", "dBm", "Unit of --txpower (dBm, mW, relative).")
	return command
}

func applySettings(device *wireless.Device, flags *setFlags, changed func(name string) bool) error {
	var applied int
	if changed("freq") {
		frequency, err := parseSI(flags.Frequency, "Hz")
		if err != nil {
			return E.Cause(err, "parse frequency")
		}
		flag := wireless.FreqAuto
		if flags.FreqFixed {
			flag = wireless.FreqFixed
		}
		err = device.SetFrequency(frequency, flag)
		if err != nil {
			return err
		}
		applied++
	}
	if changed("essid") || changed("essid-off") {
		flag := wireless.EssidOn
		if flags.ESSIDOff {
			flag = wireless.EssidOff
		}
		err := device.SetESSID(flags.ESSID, flag)
		if err != nil {
			return err
		}
		applied++
	}
	if changed("mode") {
		mode, err := wireless.ParseMode(flags.Mode)
		if err != nil {
			return err
		}
		err = device.SetMode(mode)
		if err != nil {
			return err
		}
		applied++
	}
	if changed("ap") {
		address, err := wireless.ParseAddress(flags.AccessPoint)
		if err != nil {
			return err
		}
		err = device.SetAccessPointAddress(address)
		if err != nil {
			return err
		}
		applied++
	}
	if changed("bitrate") {
		bitrate, err := parseSI(flags.Bitrate, "b/s")
		if err != nil {
			return E.Cause(err, "parse bitrate")
		}
		flag := wireless.BitrateFixed
		if flags.BitrateAuto {
			flag = wireless.BitrateAuto
		}
		err = device.SetBitrate(int(bitrate), flag)
		if err != nil {
			return err
		}
		applied++
	}
	if changed("txpower") {
		unit, err := wireless.ParseTxPowerFlag(flags.TxPowerUnit)
		if err != nil {
			return err
		}
		err = device.SetTxPower(flags.TxPower, unit)
		if err != nil {
			return err
		}
		applied++
	}
	if applied == 0 {
		return E.New("nothing to set")
	}
	logger.Info("applied ", applied, " settings to ", device.Name())
	return nil
}

func parseSI(value string, unit string) (float64, error) {
	number, parsedUnit, err := humanize.ParseSI(value)
	if err != nil {
		return 0, err
	}
	if parsedUnit != "" && parsedUnit != unit {
		return 0, E.New("unexpected unit ", parsedUnit, ", expected ", unit)
	}
	return number, nil
}
