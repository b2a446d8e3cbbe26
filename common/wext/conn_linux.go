package wext

import (
	"runtime"
	"unsafe"

	E "github.com/sagernet/sing-wireless/common/exceptions"

	"golang.org/x/sys/unix"
)

var _ Channel = (*Conn)(nil)

// Conn is an AF_INET datagram socket used only as an ioctl endpoint.
type Conn struct {
	fd int
}

func Open() (*Conn, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, E.Cause(err, "create control socket")
	}
	return &Conn{fd: fd}, nil
}

func (c *Conn) Close() error {
	return unix.Close(c.fd)
}

type iwreq struct {
	name [unix.IFNAMSIZ]byte
	data [16]byte
}

type iwreqPoint struct {
	name    [unix.IFNAMSIZ]byte
	pointer unsafe.Pointer
	length  uint16
	flags   uint16
	_       [16 - unsafe.Sizeof(uintptr(0)) - 4]byte
}

func (c *Conn) Ioctl(name string, cmd uint16, data *RequestData) error {
	if len(name) >= unix.IFNAMSIZ {
		return unix.EINVAL
	}
	headerType, loaded := HeaderTypeOf(cmd)
	if !loaded {
		return unix.EOPNOTSUPP
	}
	if headerType == HeaderTypePoint {
		return c.ioctlPoint(name, cmd, &data.Point)
	}

	var request iwreq
	copy(request.name[:], name)
	switch headerType {
	case HeaderTypeChar:
		copy(request.data[:], data.Name[:])
	case HeaderTypeUint:
		NativeOrder.PutUint32(request.data[:], data.Uint)
	case HeaderTypeFreq:
		putFreq(NativeOrder, request.data[:], data.Freq)
	case HeaderTypeParam:
		putParam(NativeOrder, request.data[:], data.Param)
	case HeaderTypeAddr:
		putSockaddr(NativeOrder, request.data[:], data.Addr)
	case HeaderTypeQual:
		putQuality(request.data[:], data.Qual)
	}
	err := c.ioctl(cmd, unsafe.Pointer(&request))
	if err != nil {
		return err
	}
	switch headerType {
	case HeaderTypeChar:
		copy(data.Name[:], request.data[:])
	case HeaderTypeUint:
		data.Uint = NativeOrder.Uint32(request.data[:])
	case HeaderTypeFreq:
		data.Freq = readFreq(NativeOrder, request.data[:])
	case HeaderTypeParam:
		data.Param = readParam(NativeOrder, request.data[:])
	case HeaderTypeAddr:
		data.Addr = readSockaddr(NativeOrder, request.data[:])
	case HeaderTypeQual:
		data.Qual = readQuality(request.data[:])
	}
	return nil
}

// ioctlPoint copies length and flags back even on failure, since SIOCGIWSCAN
// reports the required buffer size together with E2BIG.
func (c *Conn) ioctlPoint(name string, cmd uint16, point *Point) error {
	var request iwreqPoint
	copy(request.name[:], name)
	if len(point.Data) > 0 {
		request.pointer = unsafe.Pointer(&point.Data[0])
	}
	request.length = point.Length
	if int(request.length) > len(point.Data) {
		request.length = uint16(min(len(point.Data), 0xFFFF))
	}
	request.flags = point.Flags
	err := c.ioctl(cmd, unsafe.Pointer(&request))
	runtime.KeepAlive(point.Data)
	point.Length = request.length
	point.Flags = request.flags
	return err
}

func (c *Conn) ioctl(cmd uint16, request unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(c.fd), uintptr(cmd), uintptr(request))
	if errno != 0 {
		return errno
	}
	return nil
}
