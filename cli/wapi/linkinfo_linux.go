package main

import (
	E "github.com/sagernet/sing-wireless/common/exceptions"

	"github.com/vishvananda/netlink"
)

func fillLinkInfo(object *interfaceObject) error {
	link, err := netlink.LinkByName(object.Name)
	if err != nil {
		return E.Cause(err, "find link")
	}
	attrs := link.Attrs()
	object.Index = attrs.Index
	object.MTU = attrs.MTU
	object.HardwareAddr = attrs.HardwareAddr.String()
	object.OperState = attrs.OperState.String()
	return nil
}
