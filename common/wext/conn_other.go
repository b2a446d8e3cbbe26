//go:build !linux

package wext

import (
	"syscall"

	E "github.com/sagernet/sing-wireless/common/exceptions"
)

var _ Channel = (*Conn)(nil)

type Conn struct{}

func Open() (*Conn, error) {
	return nil, E.New("wireless extensions are only available on linux")
}

func (c *Conn) Close() error {
	return nil
}

func (c *Conn) Ioctl(name string, cmd uint16, data *RequestData) error {
	return syscall.ENOTSUP
}
