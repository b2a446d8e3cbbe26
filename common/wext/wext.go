// Package wext describes the Linux Wireless Extensions ioctl ABI: request
// numbers, payload layouts and the event stream returned by SIOCGIWSCAN.
package wext

import (
	"encoding/binary"
)

const (
	SIOCSIWCOMMIT = 0x8B00
	SIOCGIWNAME   = 0x8B01
	SIOCSIWFREQ   = 0x8B04
	SIOCGIWFREQ   = 0x8B05
	SIOCSIWMODE   = 0x8B06
	SIOCGIWMODE   = 0x8B07
	SIOCGIWRANGE  = 0x8B0B
	SIOCSIWAP     = 0x8B14
	SIOCGIWAP     = 0x8B15
	SIOCSIWSCAN   = 0x8B18
	SIOCGIWSCAN   = 0x8B19
	SIOCSIWESSID  = 0x8B1A
	SIOCGIWESSID  = 0x8B1B
	SIOCSIWRATE   = 0x8B20
	SIOCGIWRATE   = 0x8B21
	SIOCSIWTXPOW  = 0x8B26
	SIOCGIWTXPOW  = 0x8B27
	SIOCGIWENCODE = 0x8B2B

	IWEVQUAL   = 0x8C01
	IWEVCUSTOM = 0x8C02
	IWEVGENIE  = 0x8C05
)

const (
	IFNAMSIZ        = 16
	EssidMaxSize    = 32
	ScanMaxData     = 4096
	ARPHRDEther     = 1
	HardwareAddrLen = 6

	FreqAuto  = 0x00
	FreqFixed = 0x01

	TxPowerDBm       = 0x00
	TxPowerMilliWatt = 0x01
	TxPowerRelative  = 0x02
	TxPowerType      = 0xFF

	// RangeWEVersionOffset is the offset of we_version_compiled in struct iw_range.
	RangeWEVersionOffset = 280
)

type HeaderType uint8

const (
	HeaderTypeNull  HeaderType = 0
	HeaderTypeChar  HeaderType = 2
	HeaderTypeUint  HeaderType = 4
	HeaderTypeFreq  HeaderType = 5
	HeaderTypeAddr  HeaderType = 6
	HeaderTypePoint HeaderType = 8
	HeaderTypeParam HeaderType = 9
	HeaderTypeQual  HeaderType = 10
)

// payload sizes of the fixed header types, as laid out in union iwreq_data
var headerTypeSize = map[HeaderType]int{
	HeaderTypeChar:  IFNAMSIZ,
	HeaderTypeUint:  4,
	HeaderTypeFreq:  8,
	HeaderTypeAddr:  16,
	HeaderTypeParam: 8,
	HeaderTypeQual:  4,
}

// commandHeaderType mirrors the standard ioctl and event descriptor tables of
// net/wireless/wext-core.c for the commands this module issues or parses.
var commandHeaderType = map[uint16]HeaderType{
	SIOCSIWCOMMIT: HeaderTypeNull,
	SIOCGIWNAME:   HeaderTypeChar,
	SIOCSIWFREQ:   HeaderTypeFreq,
	SIOCGIWFREQ:   HeaderTypeFreq,
	SIOCSIWMODE:   HeaderTypeUint,
	SIOCGIWMODE:   HeaderTypeUint,
	SIOCGIWRANGE:  HeaderTypePoint,
	SIOCSIWAP:     HeaderTypeAddr,
	SIOCGIWAP:     HeaderTypeAddr,
	SIOCSIWSCAN:   HeaderTypePoint,
	SIOCGIWSCAN:   HeaderTypePoint,
	SIOCSIWESSID:  HeaderTypePoint,
	SIOCGIWESSID:  HeaderTypePoint,
	SIOCSIWRATE:   HeaderTypeParam,
	SIOCGIWRATE:   HeaderTypeParam,
	SIOCSIWTXPOW:  HeaderTypeParam,
	SIOCGIWTXPOW:  HeaderTypeParam,
	SIOCGIWENCODE: HeaderTypePoint,
	IWEVQUAL:      HeaderTypeQual,
	IWEVCUSTOM:    HeaderTypePoint,
	IWEVGENIE:     HeaderTypePoint,
}

// HeaderTypeOf returns the payload type of cmd, or false for commands outside the table.
func HeaderTypeOf(cmd uint16) (HeaderType, bool) {
	headerType, loaded := commandHeaderType[cmd]
	return headerType, loaded
}

// ByteOrder is satisfied by binary.LittleEndian, binary.BigEndian and binary.NativeEndian.
type ByteOrder = binary.ByteOrder

// Freq is struct iw_freq: the value is M * 10^E.
type Freq struct {
	M     int32
	E     int16
	I     uint8
	Flags uint8
}

// Param is struct iw_param.
type Param struct {
	Value    int32
	Fixed    uint8
	Disabled uint8
	Flags    uint16
}

// Quality is struct iw_quality.
type Quality struct {
	Qual    uint8
	Level   uint8
	Noise   uint8
	Updated uint8
}

// Sockaddr is struct sockaddr as used by SIOCGIWAP.
type Sockaddr struct {
	Family uint16
	Data   [14]byte
}

// Point is struct iw_point. Data is the user buffer, Length is the number of
// bytes offered to or reported by the kernel.
type Point struct {
	Data   []byte
	Length uint16
	Flags  uint16
}

// RequestData is the Go side of union iwreq_data; the member in use is
// selected by the header type of the request.
type RequestData struct {
	Name  [IFNAMSIZ]byte
	Uint  uint32
	Freq  Freq
	Param Param
	Addr  Sockaddr
	Qual  Quality
	Point Point
}

// Channel issues wireless extensions requests against a named interface.
// Failures are reported as syscall.Errno.
type Channel interface {
	Ioctl(name string, cmd uint16, data *RequestData) error
	Close() error
}

func putFreq(order ByteOrder, b []byte, freq Freq) {
	order.PutUint32(b[0:], uint32(freq.M))
	order.PutUint16(b[4:], uint16(freq.E))
	b[6] = freq.I
	b[7] = freq.Flags
}

func readFreq(order ByteOrder, b []byte) Freq {
	return Freq{
		M:     int32(order.Uint32(b[0:])),
		E:     int16(order.Uint16(b[4:])),
		I:     b[6],
		Flags: b[7],
	}
}

func putParam(order ByteOrder, b []byte, param Param) {
	order.PutUint32(b[0:], uint32(param.Value))
	b[4] = param.Fixed
	b[5] = param.Disabled
	order.PutUint16(b[6:], param.Flags)
}

func readParam(order ByteOrder, b []byte) Param {
	return Param{
		Value:    int32(order.Uint32(b[0:])),
		Fixed:    b[4],
		Disabled: b[5],
		Flags:    order.Uint16(b[6:]),
	}
}

func putSockaddr(order ByteOrder, b []byte, addr Sockaddr) {
	order.PutUint16(b[0:], addr.Family)
	copy(b[2:16], addr.Data[:])
}

func readSockaddr(order ByteOrder, b []byte) (addr Sockaddr) {
	addr.Family = order.Uint16(b[0:])
	copy(addr.Data[:], b[2:16])
	return
}

func putQuality(b []byte, qual Quality) {
	b[0], b[1], b[2], b[3] = qual.Qual, qual.Level, qual.Noise, qual.Updated
}

func readQuality(b []byte) Quality {
	return Quality{Qual: b[0], Level: b[1], Noise: b[2], Updated: b[3]}
}
