package main

import (
	"io"
	"strconv"

	"github.com/sagernet/sing-wireless/common/json"
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type accessPointObject struct {
	Address   string   `json:"address"`
	ESSID     *string  `json:"essid,omitempty"`
	ESSIDFlag string   `json:"essid_flag,omitempty"`
	Frequency *float64 `json:"frequency,omitempty"`
	Channel   *int     `json:"channel,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	Bitrate   *int     `json:"bitrate,omitempty"`
}

func newAccessPointObject(accessPoint wireless.AccessPoint) accessPointObject {
	object := accessPointObject{Address: accessPoint.Address.String()}
	if accessPoint.HasName {
		object.ESSID = &accessPoint.Name
		object.ESSIDFlag = accessPoint.NameFlag.String()
	}
	if accessPoint.HasFrequency {
		if channel, isChannel := accessPoint.Frequency.ChannelNumber(); isChannel {
			object.Channel = &channel
		} else {
			object.Frequency = &accessPoint.Frequency.Value
		}
	}
	if accessPoint.HasMode {
		object.Mode = accessPoint.Mode.String()
	}
	if accessPoint.HasBitrate {
		object.Bitrate = &accessPoint.Bitrate.Value
	}
	return object
}

func writeJSON(writer io.Writer, value any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func writeAccessPoints(writer io.Writer, accessPoints []wireless.AccessPoint, asJSON bool) error {
	if asJSON {
		objects := make([]accessPointObject, 0, len(accessPoints))
		for _, accessPoint := range accessPoints {
			objects = append(objects, newAccessPointObject(accessPoint))
		}
		return writeJSON(writer, objects)
	}
	table := newTable(writer, "Address", "ESSID", "Frequency", "Mode", "Bitrate")
	for _, accessPoint := range accessPoints {
		row := []string{accessPoint.Address.String(), "-", "-", "-", "-"}
		if accessPoint.HasName {
			row[1] = formatESSID(accessPoint.Name, accessPoint.NameFlag)
		}
		if accessPoint.HasFrequency {
			row[2] = formatFrequency(accessPoint.Frequency)
		}
		if accessPoint.HasMode {
			row[3] = accessPoint.Mode.String()
		}
		if accessPoint.HasBitrate {
			row[4] = formatBitrate(accessPoint.Bitrate.Value)
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func newTable(writer io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetHeaderLine(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func formatESSID(essid string, flag wireless.EssidFlag) string {
	if flag == wireless.EssidOff {
		return "off/any"
	}
	return strconv.Quote(essid)
}

func formatFrequency(frequency wireless.Frequency) string {
	if frequency.Channel {
		return frequency.String()
	}
	return humanize.SIWithDigits(frequency.Value, 3, "Hz")
}

func formatBitrate(bitrate int) string {
	return humanize.SI(float64(bitrate), "b/s")
}
