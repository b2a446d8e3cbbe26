package wext

import "github.com/sagernet/sing-wireless/common/buf"

const eventWriterMinSize = 256

// EventWriter builds event streams in the layout the kernel uses, for fixtures
// and for replaying captured dumps. The slice returned by Bytes is valid until
// the next write.
type EventWriter struct {
	buffer *buf.Buffer
	layout Layout
	order  ByteOrder
}

func NewEventWriter() *EventWriter {
	return NewEventWriterWith(NativeLayout, NativeOrder)
}

func NewEventWriterWith(layout Layout, order ByteOrder) *EventWriter {
	return &EventWriter{buffer: buf.NewSize(0), layout: layout, order: order}
}

func (w *EventWriter) Bytes() []byte {
	return w.buffer.Bytes()
}

func (w *EventWriter) Len() int {
	return w.buffer.Len()
}

func (w *EventWriter) grow(n int) {
	if w.buffer.FreeLen() >= n {
		return
	}
	buffer := buf.NewSize(max(w.buffer.Cap()*2, w.buffer.Len()+n, eventWriterMinSize))
	_, _ = buffer.Write(w.buffer.Bytes())
	w.buffer.Release()
	w.buffer = buffer
}

func (w *EventWriter) header(cmd uint16, length int, headerLen int) []byte {
	w.grow(length)
	event := w.buffer.Extend(length)
	clear(event)
	w.order.PutUint16(event[0:], uint16(length))
	w.order.PutUint16(event[2:], cmd)
	return event[headerLen:]
}

func (w *EventWriter) WriteAddr(cmd uint16, addr Sockaddr) {
	putSockaddr(w.order, w.header(cmd, w.layout.HeaderLen+headerTypeSize[HeaderTypeAddr], w.layout.HeaderLen), addr)
}

func (w *EventWriter) WriteFreq(cmd uint16, freq Freq) {
	putFreq(w.order, w.header(cmd, w.layout.HeaderLen+headerTypeSize[HeaderTypeFreq], w.layout.HeaderLen), freq)
}

func (w *EventWriter) WriteUint(cmd uint16, value uint32) {
	w.order.PutUint32(w.header(cmd, w.layout.HeaderLen+headerTypeSize[HeaderTypeUint], w.layout.HeaderLen), value)
}

func (w *EventWriter) WriteQual(cmd uint16, qual Quality) {
	putQuality(w.header(cmd, w.layout.HeaderLen+headerTypeSize[HeaderTypeQual], w.layout.HeaderLen), qual)
}

func (w *EventWriter) WriteParams(cmd uint16, params ...Param) {
	paramSize := headerTypeSize[HeaderTypeParam]
	payload := w.header(cmd, w.layout.HeaderLen+len(params)*paramSize, w.layout.HeaderLen)
	for index, param := range params {
		putParam(w.order, payload[index*paramSize:], param)
	}
}

func (w *EventWriter) WritePoint(cmd uint16, flags uint16, data []byte) {
	pointHeaderLen := w.layout.PointLen - w.layout.HeaderLen
	payload := w.header(cmd, w.layout.PointLen+len(data), w.layout.HeaderLen)
	w.order.PutUint16(payload[0:], uint16(len(data)))
	w.order.PutUint16(payload[2:], flags)
	copy(payload[pointHeaderLen:], data)
}

// WriteRaw appends an event with an arbitrary payload placed after the header.
func (w *EventWriter) WriteRaw(cmd uint16, payload []byte) {
	copy(w.header(cmd, w.layout.HeaderLen+len(payload), w.layout.HeaderLen), payload)
}
