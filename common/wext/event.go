package wext

type Event interface {
	Command() uint16
}

type AddrEvent struct {
	Cmd  uint16
	Addr Sockaddr
}

type FreqEvent struct {
	Cmd  uint16
	Freq Freq
}

type UintEvent struct {
	Cmd   uint16
	Value uint32
}

// ParamEvent carries one or more iw_param values; drivers append a value per
// supported bit rate to a single SIOCGIWRATE event.
type ParamEvent struct {
	Cmd    uint16
	Params []Param
}

type QualEvent struct {
	Cmd  uint16
	Qual Quality
}

type CharEvent struct {
	Cmd  uint16
	Name [IFNAMSIZ]byte
}

// PointEvent data aliases the stream it was read from.
type PointEvent struct {
	Cmd   uint16
	Flags uint16
	Data  []byte
}

// UnknownEvent is an event whose command is outside the descriptor table,
// skipped by its declared length.
type UnknownEvent struct {
	Cmd    uint16
	Length int
}

func (e *AddrEvent) Command() uint16    { return e.Cmd }
func (e *FreqEvent) Command() uint16    { return e.Cmd }
func (e *UintEvent) Command() uint16    { return e.Cmd }
func (e *ParamEvent) Command() uint16   { return e.Cmd }
func (e *QualEvent) Command() uint16    { return e.Cmd }
func (e *CharEvent) Command() uint16    { return e.Cmd }
func (e *PointEvent) Command() uint16   { return e.Cmd }
func (e *UnknownEvent) Command() uint16 { return e.Cmd }
