package wireless

import (
	"io"
	"strconv"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

// ScanDecoder assembles access points from a SIOCGIWSCAN event stream.
// SIOCGIWAP opens a new cell; essid, frequency, mode and bitrate events fill
// the open cell, a repeated event replacing the earlier value. Other events are
// skipped by their declared length.
type ScanDecoder struct {
	layout wext.Layout
	order  wext.ByteOrder
}

func NewScanDecoder(layout wext.Layout, order wext.ByteOrder) *ScanDecoder {
	return &ScanDecoder{layout: layout, order: order}
}

var nativeDecoder = NewScanDecoder(wext.NativeLayout, wext.NativeOrder)

// DecodeScan decodes a stream produced by the running kernel.
func DecodeScan(content []byte) ([]AccessPoint, error) {
	return nativeDecoder.Decode(content)
}

// Decode returns the cells in stream order. It either decodes the whole stream
// or fails without a partial result.
func (d *ScanDecoder) Decode(content []byte) ([]AccessPoint, error) {
	reader := wext.NewEventReaderWith(content, d.layout, d.order)
	accessPoints := make([]AccessPoint, 0)
	var (
		current *AccessPoint
		skipped int
	)
	for {
		offset := reader.Offset()
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, E.Cause1(ErrMalformedStream, err)
		}
		switch event.Command() {
		case wext.SIOCGIWAP:
			if current != nil {
				accessPoints = append(accessPoints, *current)
			}
			current = &AccessPoint{Address: addressFromSockaddr(event.(*wext.AddrEvent).Addr)}
			continue
		case wext.SIOCGIWESSID, wext.SIOCGIWFREQ, wext.SIOCGIWMODE, wext.SIOCGIWRATE:
			if current == nil {
				return nil, E.Cause1(ErrMalformedStream, E.New("event 0x", strconv.FormatUint(uint64(event.Command()), 16), " before the first access point at offset ", offset))
			}
		default:
			skipped++
			continue
		}
		switch event := event.(type) {
		case *wext.PointEvent:
			if len(event.Data) > wext.EssidMaxSize {
				return nil, E.Cause1(ErrMalformedStream, E.New("essid of ", len(event.Data), " bytes at offset ", offset))
			}
			current.HasName = true
			current.Name = string(event.Data)
			current.NameFlag = EssidOff
			if event.Flags != 0 {
				current.NameFlag = EssidOn
			}
		case *wext.FreqEvent:
			current.HasFrequency = true
			current.Frequency = frequencyFrom(event.Freq)
		case *wext.UintEvent:
			current.HasMode = true
			current.Mode = Mode(event.Value)
		case *wext.ParamEvent:
			current.HasBitrate = true
			current.Bitrate = bitrateFrom(event.Params[len(event.Params)-1])
		}
	}
	if current != nil {
		accessPoints = append(accessPoints, *current)
	}
	if skipped > 0 {
		logger.Trace("skipped ", skipped, " unhandled scan events")
	}
	return accessPoints, nil
}
