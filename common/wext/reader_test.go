package wext_test

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/sagernet/sing-wireless/common/wext"

	"github.com/stretchr/testify/require"
)

var testLayouts = []struct {
	name   string
	layout wext.Layout
	order  wext.ByteOrder
}{
	{"64-bit little endian", wext.Layout64, binary.LittleEndian},
	{"32-bit little endian", wext.Layout32, binary.LittleEndian},
	{"64-bit big endian", wext.Layout64, binary.BigEndian},
}

func TestEventReaderRoundTrip(t *testing.T) {
	t.Parallel()
	for _, testCase := range testLayouts {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			writer := wext.NewEventWriterWith(testCase.layout, testCase.order)
			addr := wext.Sockaddr{Family: wext.ARPHRDEther}
			copy(addr.Data[:], []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55})
			writer.WriteAddr(wext.SIOCGIWAP, addr)
			writer.WritePoint(wext.SIOCGIWESSID, 1, []byte("home"))
			writer.WriteFreq(wext.SIOCGIWFREQ, wext.Freq{M: 2412, E: 6, Flags: wext.FreqFixed})
			writer.WriteUint(wext.SIOCGIWMODE, 2)
			writer.WriteParams(wext.SIOCGIWRATE, wext.Param{Value: 1000000}, wext.Param{Value: 54000000, Fixed: 1})
			writer.WriteQual(wext.IWEVQUAL, wext.Quality{Qual: 70, Level: 200})

			reader := wext.NewEventReaderWith(writer.Bytes(), testCase.layout, testCase.order)
			event, err := reader.Next()
			require.NoError(t, err)
			require.Equal(t, &wext.AddrEvent{Cmd: wext.SIOCGIWAP, Addr: addr}, event)

			event, err = reader.Next()
			require.NoError(t, err)
			require.Equal(t, &wext.PointEvent{Cmd: wext.SIOCGIWESSID, Flags: 1, Data: []byte("home")}, event)

			event, err = reader.Next()
			require.NoError(t, err)
			require.Equal(t, &wext.FreqEvent{Cmd: wext.SIOCGIWFREQ, Freq: wext.Freq{M: 2412, E: 6, Flags: wext.FreqFixed}}, event)

			event, err = reader.Next()
			require.NoError(t, err)
			require.Equal(t, &wext.UintEvent{Cmd: wext.SIOCGIWMODE, Value: 2}, event)

			event, err = reader.Next()
			require.NoError(t, err)
			require.Equal(t, &wext.ParamEvent{Cmd: wext.SIOCGIWRATE, Params: []wext.Param{{Value: 1000000}, {Value: 54000000, Fixed: 1}}}, event)

			event, err = reader.Next()
			require.NoError(t, err)
			require.Equal(t, &wext.QualEvent{Cmd: wext.IWEVQUAL, Qual: wext.Quality{Qual: 70, Level: 200}}, event)

			require.Equal(t, writer.Len(), reader.Offset())
			_, err = reader.Next()
			require.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestEventReaderLayoutSizes(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WritePoint(wext.SIOCGIWESSID, 0, []byte("ab"))
	require.Equal(t, 18, writer.Len())
	writer = wext.NewEventWriterWith(wext.Layout32, binary.LittleEndian)
	writer.WritePoint(wext.SIOCGIWESSID, 0, []byte("ab"))
	require.Equal(t, 10, writer.Len())
	writer.WriteUint(wext.SIOCGIWMODE, 3)
	require.Equal(t, 18, writer.Len())
}

func TestEventReaderUnknown(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	writer.WriteRaw(0x8CFF, []byte{1, 2, 3, 4, 5})
	writer.WriteUint(wext.SIOCGIWMODE, 1)
	reader := wext.NewEventReaderWith(writer.Bytes(), wext.Layout64, binary.LittleEndian)
	event, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, &wext.UnknownEvent{Cmd: 0x8CFF, Length: 13}, event)
	event, err = reader.Next()
	require.NoError(t, err)
	require.Equal(t, &wext.UintEvent{Cmd: wext.SIOCGIWMODE, Value: 1}, event)
}

func TestEventReaderTruncated(t *testing.T) {
	t.Parallel()
	order := binary.LittleEndian
	header := func(length uint16, cmd uint16) []byte {
		return order.AppendUint16(order.AppendUint16(nil, length), cmd)
	}
	pointEvent := func(eventLen uint16, dataLen uint16) []byte {
		content := append(header(eventLen, wext.SIOCGIWESSID), make([]byte, 4)...)
		content = order.AppendUint16(content, dataLen)
		content = order.AppendUint16(content, 0)
		content = append(content, make([]byte, 4)...)
		return append(content, make([]byte, int(eventLen)-len(content))...)
	}
	for _, testCase := range []struct {
		name    string
		content []byte
	}{
		{"short header", []byte{8, 0}},
		{"length below header", header(2, wext.SIOCGIWMODE)},
		{"length past end", append(header(16, wext.SIOCGIWMODE), make([]byte, 4)...)},
		{"fixed event too short", append(header(8, wext.SIOCGIWFREQ), make([]byte, 4)...)},
		{"point header too short", append(header(12, wext.SIOCGIWESSID), make([]byte, 8)...)},
		{"point data past event", pointEvent(20, 8)},
		{"empty param", append(header(8, wext.SIOCGIWRATE), make([]byte, 4)...)},
		{"param remainder", append(header(20, wext.SIOCGIWRATE), make([]byte, 16)...)},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			reader := wext.NewEventReaderWith(testCase.content, wext.Layout64, order)
			_, err := reader.Next()
			require.ErrorIs(t, err, wext.ErrTruncated)
		})
	}
}

func TestEventReaderEmpty(t *testing.T) {
	t.Parallel()
	_, err := wext.NewEventReader(nil).Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestEventWriterGrow(t *testing.T) {
	t.Parallel()
	writer := wext.NewEventWriterWith(wext.Layout64, binary.LittleEndian)
	const count = 600
	for index := range count {
		writer.WriteUint(wext.SIOCGIWMODE, uint32(index))
	}
	require.Equal(t, count*12, writer.Len())
	reader := wext.NewEventReaderWith(writer.Bytes(), wext.Layout64, binary.LittleEndian)
	for index := range count {
		event, err := reader.Next()
		require.NoError(t, err)
		require.Equal(t, &wext.UintEvent{Cmd: wext.SIOCGIWMODE, Value: uint32(index)}, event)
	}
	_, err := reader.Next()
	require.ErrorIs(t, err, io.EOF)
}
