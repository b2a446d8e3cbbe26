//go:build !linux

package main

import (
	E "github.com/sagernet/sing-wireless/common/exceptions"
)

func fillLinkInfo(object *interfaceObject) error {
	return E.New("link info is only available on linux")
}
