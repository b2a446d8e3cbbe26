package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sagernet/sing-wireless/common/json"
	"github.com/sagernet/sing-wireless/common/wext"
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/stretchr/testify/require"
)

func testDump() []byte {
	writer := wext.NewEventWriter()
	addr := wext.Sockaddr{Family: wext.ARPHRDEther}
	copy(addr.Data[:], []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01})
	writer.WriteAddr(wext.SIOCGIWAP, addr)
	writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("office"))
	writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 2412, E: 6})
	writer.WriteParams(wext.SIOCGIWRATE, wext.Param{Value: 54000000})
	copy(addr.Data[:], []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x02})
	writer.WriteAddr(wext.SIOCGIWAP, addr)
	writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 11})
	writer.WriteUint(wext.SIOCGIWMODE, uint32(wireless.ModeAdHoc))
	return writer.Bytes()
}

func TestWriteAccessPointsJSON(t *testing.T) {
	t.Parallel()
	accessPoints, err := wireless.DecodeScan(testDump())
	require.NoError(t, err)
	var output bytes.Buffer
	require.NoError(t, writeAccessPoints(&output, accessPoints, true))
	var objects []map[string]any
	require.NoError(t, json.Unmarshal(output.Bytes(), &objects))
	require.Equal(t, []map[string]any{
		{
			"address":    "02:00:00:00:00:01",
			"essid":      "office",
			"essid_flag": "on",
			"frequency":  2.412e9,
			"bitrate":    54000000.0,
		},
		{
			"address": "02:00:00:00:00:02",
			"channel": 11.0,
			"mode":    "ad-hoc",
		},
	}, objects)
}

func TestWriteAccessPointsTable(t *testing.T) {
	t.Parallel()
	accessPoints, err := wireless.DecodeScan(testDump())
	require.NoError(t, err)
	var output bytes.Buffer
	require.NoError(t, writeAccessPoints(&output, accessPoints, false))
	require.Contains(t, output.String(), "02:00:00:00:00:01")
	require.Contains(t, output.String(), `"office"`)
	require.Contains(t, output.String(), "2.412 GHz")
	require.Contains(t, output.String(), "54 Mb/s")
	require.Contains(t, output.String(), "channel 11")
}

func TestDecodeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.bin")
	require.NoError(t, os.WriteFile(path, testDump(), 0o644))
	command := newCommand(new(Options))
	var output bytes.Buffer
	command.SetOut(&output)
	command.SetArgs([]string{"decode", path, "--json"})
	require.NoError(t, command.Execute())
	var objects []map[string]any
	require.NoError(t, json.Unmarshal(output.Bytes(), &objects))
	require.Len(t, objects, 2)

	command = newCommand(new(Options))
	command.SetOut(&output)
	require.NoError(t, os.WriteFile(path, testDump()[:10], 0o644))
	command.SetArgs([]string{"decode", path})
	require.ErrorIs(t, command.Execute(), wireless.ErrMalformedStream)
}

func TestParseSI(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		input string
		value float64
	}{
		{"2.412G", 2.412e9},
		{"2.412GHz", 2.412e9},
		{"11", 11},
	} {
		value, err := parseSI(testCase.input, "Hz")
		require.NoError(t, err, testCase.input)
		require.InDelta(t, testCase.value, value, 1e-3, testCase.input)
	}
	_, err := parseSI("54Mb/s", "Hz")
	require.Error(t, err)
}

func TestFormatTxPower(t *testing.T) {
	t.Parallel()
	require.Equal(t, "20 dBm (100 mW)", formatTxPower(wireless.TxPower{Value: 20, Flag: wireless.TxPowerDBm}))
	require.Equal(t, "100 mW (20 dBm)", formatTxPower(wireless.TxPower{Value: 100, Flag: wireless.TxPowerMilliWatt}))
	require.Equal(t, "off", formatTxPower(wireless.TxPower{Disabled: true}))
}
