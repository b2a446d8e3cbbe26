package wireless

import (
	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/log"
	"github.com/sagernet/sing-wireless/common/wext"
)

var logger = log.NewLogger("wireless")

// Device addresses one network interface through a wireless extensions channel.
// Devices on distinct interfaces share nothing and may be used concurrently;
// a single Device is not safe for concurrent use.
type Device struct {
	channel wext.Channel
	name    string
	owned   bool
}

// NewDevice borrows channel, which must stay open while the device is in use.
func NewDevice(channel wext.Channel, name string) (*Device, error) {
	if name == "" || len(name) >= wext.IFNAMSIZ {
		return nil, E.Cause1(ErrInvalidArgument, E.New("interface name must be 1 to ", wext.IFNAMSIZ-1, " bytes: ", name))
	}
	return &Device{channel: channel, name: name}, nil
}

// Open creates a control socket owned by the returned device.
func Open(name string) (*Device, error) {
	conn, err := wext.Open()
	if err != nil {
		return nil, err
	}
	device, err := NewDevice(conn, name)
	if err != nil {
		conn.Close()
		return nil, err
	}
	device.owned = true
	return device, nil
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Close() error {
	if !d.owned {
		return nil
	}
	return d.channel.Close()
}

func (d *Device) ioctl(cmd uint16, data *wext.RequestData) error {
	return d.channel.Ioctl(d.name, cmd, data)
}
