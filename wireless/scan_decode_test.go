package wireless_test

import (
	"encoding/binary"
	"testing"

	"github.com/sagernet/sing-wireless/common/wext"
	"github.com/sagernet/sing-wireless/wireless"

	"github.com/stretchr/testify/require"
)

func sockaddr(hardware ...byte) wext.Sockaddr {
	addr := wext.Sockaddr{Family: wext.ARPHRDEther}
	copy(addr.Data[:], hardware)
	return addr
}

func address(hardware ...byte) wireless.Address {
	address := wireless.Address{Family: wext.ARPHRDEther}
	copy(address.Hardware[:], hardware)
	return address
}

func TestDecodeScanRecords(t *testing.T) {
	t.Parallel()
	for _, testCase := range []struct {
		name   string
		layout wext.Layout
	}{
		{"64-bit", wext.Layout64},
		{"32-bit", wext.Layout32},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			writer := wext.NewEventWriterWith(testCase.layout, binary.LittleEndian)
			writer.WriteAddr(wext.SIOCGIWAP, sockaddr(0x02, 0, 0, 0, 0, 0x01))
			writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("office"))
			writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 24, E: 8})
			writer.WriteUint(wext.SIOCGIWMODE, uint32(wireless.ModeMaster))
			writer.WriteParams(wext.SIOCGIWRATE, wext.Param{Value: 1000000}, wext.Param{Value: 54000000})
			writer.WriteAddr(wext.SIOCGIWAP, sockaddr(0x02, 0, 0, 0, 0, 0x02))
			writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 6})
			writer.WriteAddr(wext.SIOCGIWAP, sockaddr(0x02, 0, 0, 0, 0, 0x03))
			writer.WritePoint(wext.SIOCGIWESSID, 0, nil)

			accessPoints, err := wireless.NewScanDecoder(testCase.layout, binary.LittleEndian).Decode(writer.Bytes())
			require.NoError(t, err)
			require.Equal(t, []wireless.AccessPoint{
				{
					Address:      address(0x02, 0, 0, 0, 0, 0x01),
					HasName:      true,
					Name:         "office",
					NameFlag:     wireless.EssidOn,
					HasFrequency: true,
					Frequency:    wireless.Frequency{Value: 2.4e9},
					HasMode:      true,
					Mode:         wireless.ModeMaster,
					HasBitrate:   true,
					Bitrate:      wireless.Bitrate{Value: 54000000},
				},
				{
					Address:      address(0x02, 0, 0, 0, 0, 0x02),
					HasFrequency: true,
					Frequency:    wireless.Frequency{Value: 6, Channel: true},
				},
				{
					Address:  address(0x02, 0, 0, 0, 0, 0x03),
					HasName:  true,
					NameFlag: wireless.EssidOff,
				},
			}, accessPoints)
		})
	}
}

func TestDecodeScanIdempotent(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("cafe"))
	decoder := wireless.NewScanDecoder(wext.Layout64, binary.LittleEndian)
	first, err := decoder.Decode(writer.Bytes())
	require.NoError(t, err)
	second, err := decoder.Decode(writer.Bytes())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDecodeScanLastWriteWins(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 1})
	writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 5180, E: 6, Flags: wext.FreqFixed})
	writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("first"))
	writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("second"))
	accessPoints, err := wireless.NewScanDecoder(wext.Layout64, binary.LittleEndian).Decode(writer.Bytes())
	require.NoError(t, err)
	require.Len(t, accessPoints, 1)
	require.Equal(t, wireless.Frequency{Value: 5.18e9, Flag: wireless.FreqFixed}, accessPoints[0].Frequency)
	require.Equal(t, "second", accessPoints[0].Name)
}

func TestDecodeScanFieldBeforeAccessPoint(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("orphan"))
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	accessPoints, err := wireless.NewScanDecoder(wext.Layout64, binary.LittleEndian).Decode(writer.Bytes())
	require.ErrorIs(t, err, wireless.ErrMalformedStream)
	require.Nil(t, accessPoints)
}

func TestDecodeScanTruncated(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	boundary := writer.Len()
	writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("cut short"))
	content := writer.Bytes()
	for cut := 1; cut < len(content); cut++ {
		if cut == boundary {
			continue
		}
		accessPoints, err := wireless.NewScanDecoder(wext.Layout64, binary.LittleEndian).Decode(content[:cut])
		require.ErrorIs(t, err, wireless.ErrMalformedStream, "cut at %d", cut)
		require.ErrorIs(t, err, wext.ErrTruncated, "cut at %d", cut)
		require.Nil(t, accessPoints)
	}
}

func TestDecodeScanLongEssid(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	writer.WritePoint(wext.SIOCGIWESSID, 1, make([]byte, wext.EssidMaxSize+1))
	_, err := wireless.NewScanDecoder(wext.Layout64, binary.LittleEndian).Decode(writer.Bytes())
	require.ErrorIs(t, err, wireless.ErrMalformedStream)
}

func TestDecodeScanSkipsUnknown(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WriteRaw(0x8CEE, []byte("vendor"))
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	writer.WriteQual(wext.IWEVQUAL, wext.Quality{Qual: 40})
	writer.WritePoint(wext.IWEVCUSTOM, 0, []byte("tsf=0000000000000000"))
	writer.WriteRaw(0x8CEF, nil)
	writer.WriteUint(wext.SIOCGIWMODE, uint32(wireless.ModeAdHoc))
	accessPoints, err := wireless.NewScanDecoder(wext.Layout64, binary.LittleEndian).Decode(writer.Bytes())
	require.NoError(t, err)
	require.Equal(t, []wireless.AccessPoint{{
		Address: address(1, 2, 3, 4, 5, 6),
		HasMode: true,
		Mode:    wireless.ModeAdHoc,
	}}, accessPoints)
}

func TestDecodeScanEmpty(t *testing.T) {
	t.Parallel()
	accessPoints, err := wireless.DecodeScan(nil)
	require.NoError(t, err)
	require.NotNil(t, accessPoints)
	require.Empty(t, accessPoints)
}

func TestDecodeScanNativeLayout(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriter()
	writer.WriteAddr(wext.SIOCGIWAP, sockaddr(1, 2, 3, 4, 5, 6))
	writer.WriteUint(wext.SIOCGIWMODE, 99)
	accessPoints, err := wireless.DecodeScan(writer.Bytes())
	require.NoError(t, err)
	require.Len(t, accessPoints, 1)
	require.Equal(t, wireless.Mode(99), accessPoints[0].Mode)
	require.Equal(t, "unknown(99)", accessPoints[0].Mode.String())
}
