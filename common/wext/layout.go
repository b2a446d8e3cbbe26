package wext

import (
	"encoding/binary"
	"unsafe"
)

// eventPackedHeaderLen is IW_EV_LCP_PK_LEN: the len and cmd fields of struct iw_event.
const eventPackedHeaderLen = 4

// Layout is the placement of payloads inside a scan event stream. The kernel
// aligns union iwreq_data to the pointer size, so the fixed payload starts at
// IW_EV_LCP_LEN and iw_point data follows its length and flags at IW_EV_POINT_LEN.
type Layout struct {
	HeaderLen int
	PointLen  int
}

var (
	Layout32     = Layout{HeaderLen: 4, PointLen: 8}
	Layout64     = Layout{HeaderLen: 8, PointLen: 16}
	NativeLayout = layoutFor(int(unsafe.Sizeof(uintptr(0))))
)

// NativeOrder is the byte order of kernel generated streams on this host.
var NativeOrder ByteOrder = binary.NativeEndian

func layoutFor(pointerSize int) Layout {
	if pointerSize == 4 {
		return Layout32
	}
	return Layout64
}
