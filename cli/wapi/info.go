package main

import (
	"strconv"

	"github.com/sagernet/sing-wireless/wireless"

	"github.com/spf13/cobra"
)

type infoObject struct {
	Interface   string  `json:"interface"`
	WEVersion   *int    `json:"we_version,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
	ESSID       *string `json:"essid,omitempty"`
	ESSIDFlag   string  `json:"essid_flag,omitempty"`
	Mode        string  `json:"mode,omitempty"`
	AccessPoint string  `json:"access_point,omitempty"`
	Bitrate     *int    `json:"bitrate,omitempty"`
	BitrateFlag string  `json:"bitrate_flag,omitempty"`
	TxPower     string  `json:"txpower,omitempty"`
}

func newInfoCommand(options *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "info [interface]",
		Short: "Show the wireless settings of an interface",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := options.InterfaceName(args)
			if err != nil {
				return err
			}
			device, err := wireless.Open(name)
			if err != nil {
				return err
			}
			defer device.Close()
			info := collectInfo(device)
			if options.JSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			table := newTable(cmd.OutOrStdout(), "Setting", "Value")
			table.Append([]string{"interface", info.Interface})
			if info.WEVersion != nil {
				table.Append([]string{"we version", strconv.Itoa(*info.WEVersion)})
			}
			if info.Frequency != nil {
				table.Append([]string{"frequency", *info.Frequency})
			}
			if info.ESSID != nil {
				table.Append([]string{"essid", formatESSID(*info.ESSID, wireless.EssidOn) + " (" + info.ESSIDFlag + ")"})
			}
			if info.Mode != "" {
				table.Append([]string{"mode", info.Mode})
			}
			if info.AccessPoint != "" {
				table.Append([]string{"access point", info.AccessPoint})
			}
			if info.Bitrate != nil {
				table.Append([]string{"bitrate", formatBitrate(*info.Bitrate) + " (" + info.BitrateFlag + ")"})
			}
			if info.TxPower != "" {
				table.Append([]string{"txpower", info.TxPower})
			}
			table.Render()
			return nil
		},
	}
}

// collectInfo reads every setting the driver answers; refused requests are
// left out of the result.
func collectInfo(device *wireless.Device) infoObject {
	info := infoObject{Interface: device.Name()}
	if version, err := device.WEVersion(); err == nil {
		info.WEVersion = &version
	} else {
		logger.Debug("we version: ", err)
	}
	if frequency, err := device.Frequency(); err == nil {
		formatted := formatFrequency(frequency) + " (" + frequency.Flag.String() + ")"
		info.Frequency = &formatted
	} else {
		logger.Debug("frequency: ", err)
	}
	if essid, flag, err := device.ESSID(); err == nil {
		info.ESSID = &essid
		info.ESSIDFlag = flag.String()
	} else {
		logger.Debug("essid: ", err)
	}
	if mode, err := device.Mode(); err == nil {
		info.Mode = mode.String()
	} else {
		logger.Debug("mode: ", err)
	}
	if address, err := device.AccessPointAddress(); err == nil {
		switch {
		case address.IsNull():
			info.AccessPoint = "not associated"
		case address.IsBroadcast():
			info.AccessPoint = "any"
		default:
			info.AccessPoint = address.String()
		}
	} else {
		logger.Debug("access point: ", err)
	}
	if bitrate, err := device.Bitrate(); err == nil {
		info.Bitrate = &bitrate.Value
		info.BitrateFlag = bitrate.Flag.String()
	} else {
		logger.Debug("bitrate: ", err)
	}
	if txPower, err := device.TxPower(); err == nil {
		info.TxPower = formatTxPower(txPower)
	} else {
		logger.Debug("txpower: ", err)
	}
	return info
}

func formatTxPower(txPower wireless.TxPower) string {
	if txPower.Disabled {
		return "off"
	}
	switch txPower.Flag {
	case wireless.TxPowerDBm:
		return strconv.Itoa(txPower.Value) + " dBm (" + strconv.Itoa(wireless.DBmToMilliWatt(txPower.Value)) + " mW)"
	case wireless.TxPowerMilliWatt:
		return strconv.Itoa(txPower.Value) + " mW (" + strconv.Itoa(wireless.MilliWattToDBm(txPower.Value)) + " dBm)"
	default:
		return strconv.Itoa(txPower.Value) + " " + txPower.Flag.String()
	}
}

func formatOptionalInt(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}
