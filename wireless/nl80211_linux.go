package wireless

import (
	"context"
	"errors"
	"os"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"

	"github.com/mdlayher/wifi"
)

// ScanNL80211 scans through nl80211 instead of wireless extensions, for
// drivers that dropped the compatibility layer. Results that fail to refresh
// fall back to the driver's cached BSS list.
func ScanNL80211(ctx context.Context, name string) ([]AccessPoint, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, openNL80211Error(err)
	}
	defer client.Close()
	interfaces, err := client.Interfaces()
	if err != nil {
		return nil, kernelError(err, "list nl80211 interfaces")
	}
	var ifi *wifi.Interface
	for _, candidate := range interfaces {
		if candidate.Name == name {
			ifi = candidate
			break
		}
	}
	if ifi == nil {
		return nil, E.Cause1(ErrUnsupported, E.New("no nl80211 interface named ", name))
	}
	err = client.Scan(ctx, ifi)
	if err != nil {
		if ctx.Err() != nil {
			return nil, E.Cause(ctx.Err(), "scan ", name)
		}
		if !errors.Is(err, wifi.ErrScanAborted) {
			logger.Debug("nl80211 scan on ", name, " failed, using cached results: ", err)
		}
	}
	bssList, err := client.AccessPoints(ifi)
	if err != nil {
		return nil, kernelError(err, "get nl80211 access points of ", name)
	}
	return accessPointsFromBSS(bssList), nil
}

// openNL80211Error reports a kernel without the nl80211 generic netlink
// family as unsupported rather than as a device failure.
func openNL80211Error(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return E.Cause1(ErrUnsupported, E.Cause(err, "open nl80211"))
	}
	return kernelError(err, "open nl80211")
}

// accessPointsFromBSS drops entries without an Ethernet BSSID.
func accessPointsFromBSS(bssList []*wifi.BSS) []AccessPoint {
	accessPoints := make([]AccessPoint, 0, len(bssList))
	for _, bss := range bssList {
		if len(bss.BSSID) != wext.HardwareAddrLen {
			continue
		}
		accessPoints = append(accessPoints, accessPointFromBSS(bss))
	}
	return accessPoints
}

func accessPointFromBSS(bss *wifi.BSS) AccessPoint {
	accessPoint := AccessPoint{
		Address:      Address{Family: wext.ARPHRDEther},
		HasName:      true,
		Name:         bss.SSID,
		NameFlag:     EssidOn,
		HasFrequency: true,
		Frequency: Frequency{
			Value: float64(bss.Frequency) * 1e6,
			Flag:  FreqFixed,
		},
	}
	copy(accessPoint.Address.Hardware[:], bss.BSSID)
	if bss.SSID == "" {
		accessPoint.NameFlag = EssidOff
	}
	return accessPoint
}
