package wext

import (
	"io"
	"strconv"

	"github.com/sagernet/sing-wireless/common/buf"
	E "github.com/sagernet/sing-wireless/common/exceptions"
)

var ErrTruncated = E.New("truncated event")

// EventReader walks a SIOCGIWSCAN result one event at a time. It never reads
// past the end of the stream and never moves backwards.
type EventReader struct {
	buffer *buf.Buffer
	layout Layout
	order  ByteOrder
}

func NewEventReader(content []byte) *EventReader {
	return NewEventReaderWith(content, NativeLayout, NativeOrder)
}

func NewEventReaderWith(content []byte, layout Layout, order ByteOrder) *EventReader {
	return &EventReader{
		buffer: buf.As(content),
		layout: layout,
		order:  order,
	}
}

// Offset is the position of the next event in the stream.
func (r *EventReader) Offset() int {
	return r.buffer.Start()
}

// Next returns the next event, or io.EOF once the stream is exhausted.
func (r *EventReader) Next() (Event, error) {
	if r.buffer.IsEmpty() {
		return nil, io.EOF
	}
	offset := r.buffer.Start()
	header, err := r.buffer.Peek(eventPackedHeaderLen)
	if err != nil {
		return nil, truncated(offset, "event header needs ", eventPackedHeaderLen, " bytes, ", r.buffer.Len(), " remaining")
	}
	length := int(r.order.Uint16(header[0:]))
	cmd := r.order.Uint16(header[2:])
	if length < eventPackedHeaderLen {
		return nil, truncated(offset, "event 0x", hex16(cmd), " declares length ", length)
	}
	if length > r.buffer.Len() {
		return nil, truncated(offset, "event 0x", hex16(cmd), " declares length ", length, ", ", r.buffer.Len(), " remaining")
	}
	content, _ := r.buffer.ReadBytes(length)

	headerType, loaded := HeaderTypeOf(cmd)
	if !loaded {
		return &UnknownEvent{Cmd: cmd, Length: length}, nil
	}
	switch headerType {
	case HeaderTypePoint:
		if length < r.layout.PointLen {
			return nil, truncated(offset, "point event 0x", hex16(cmd), " length ", length, " below ", r.layout.PointLen)
		}
		pointHeader := content[r.layout.HeaderLen:]
		dataLen := int(r.order.Uint16(pointHeader[0:]))
		flags := r.order.Uint16(pointHeader[2:])
		if r.layout.PointLen+dataLen > length {
			return nil, truncated(offset, "point event 0x", hex16(cmd), " data length ", dataLen, " exceeds event length ", length)
		}
		return &PointEvent{Cmd: cmd, Flags: flags, Data: content[r.layout.PointLen : r.layout.PointLen+dataLen]}, nil
	case HeaderTypeParam:
		payload := length - r.layout.HeaderLen
		paramSize := headerTypeSize[HeaderTypeParam]
		if payload < paramSize || payload%paramSize != 0 {
			return nil, truncated(offset, "param event 0x", hex16(cmd), " payload ", payload, " is not a multiple of ", paramSize)
		}
		params := make([]Param, 0, payload/paramSize)
		for index := r.layout.HeaderLen; index < length; index += paramSize {
			params = append(params, readParam(r.order, content[index:]))
		}
		return &ParamEvent{Cmd: cmd, Params: params}, nil
	case HeaderTypeNull:
		return &UnknownEvent{Cmd: cmd, Length: length}, nil
	}
	size := headerTypeSize[headerType]
	if length < r.layout.HeaderLen+size {
		return nil, truncated(offset, "event 0x", hex16(cmd), " length ", length, " below ", r.layout.HeaderLen+size)
	}
	payload := content[r.layout.HeaderLen:]
	switch headerType {
	case HeaderTypeAddr:
		return &AddrEvent{Cmd: cmd, Addr: readSockaddr(r.order, payload)}, nil
	case HeaderTypeFreq:
		return &FreqEvent{Cmd: cmd, Freq: readFreq(r.order, payload)}, nil
	case HeaderTypeUint:
		return &UintEvent{Cmd: cmd, Value: r.order.Uint32(payload)}, nil
	case HeaderTypeQual:
		return &QualEvent{Cmd: cmd, Qual: readQuality(payload)}, nil
	case HeaderTypeChar:
		event := &CharEvent{Cmd: cmd}
		copy(event.Name[:], payload)
		return event, nil
	default:
		return &UnknownEvent{Cmd: cmd, Length: length}, nil
	}
}

func truncated(offset int, message ...any) error {
	return E.Cause1(ErrTruncated, E.New(append(append([]any{}, message...), " at offset ", offset)...))
}

func hex16(value uint16) string {
	return strconv.FormatUint(uint64(value), 16)
}
