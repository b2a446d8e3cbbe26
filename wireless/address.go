package wireless

import (
	"net"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

// Address is a link layer address tagged with its ARP hardware type.
// The broadcast address stands for "any" access point and the null address for "off".
type Address struct {
	Family   uint16
	Hardware [wext.HardwareAddrLen]byte
}

func BroadcastAddress() Address {
	return Address{
		Family:   wext.ARPHRDEther,
		Hardware: [wext.HardwareAddrLen]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
}

func NullAddress() Address {
	return Address{Family: wext.ARPHRDEther}
}

func ParseAddress(s string) (Address, error) {
	switch s {
	case "any", "auto":
		return BroadcastAddress(), nil
	case "off":
		return NullAddress(), nil
	}
	hardwareAddr, err := net.ParseMAC(s)
	if err != nil {
		return Address{}, E.Cause1(ErrInvalidArgument, err)
	}
	if len(hardwareAddr) != wext.HardwareAddrLen {
		return Address{}, E.Cause1(ErrInvalidArgument, E.New("not an ethernet address: ", s))
	}
	address := Address{Family: wext.ARPHRDEther}
	copy(address.Hardware[:], hardwareAddr)
	return address, nil
}

func (a Address) IsBroadcast() bool {
	return a.Hardware == BroadcastAddress().Hardware
}

func (a Address) IsNull() bool {
	return a.Hardware == [wext.HardwareAddrLen]byte{}
}

func (a Address) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(append([]byte(nil), a.Hardware[:]...))
}

func (a Address) String() string {
	return a.HardwareAddr().String()
}

func addressFromSockaddr(addr wext.Sockaddr) Address {
	address := Address{Family: addr.Family}
	copy(address.Hardware[:], addr.Data[:wext.HardwareAddrLen])
	return address
}

func (a Address) sockaddr() wext.Sockaddr {
	addr := wext.Sockaddr{Family: a.Family}
	copy(addr.Data[:], a.Hardware[:])
	return addr
}
