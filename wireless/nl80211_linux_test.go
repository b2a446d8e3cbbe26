package wireless

import (
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/sagernet/sing-wireless/common/wext"

	"github.com/mdlayher/wifi"
	"github.com/stretchr/testify/require"
)

func TestAccessPointFromBSS(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		bss      wifi.BSS
		expected AccessPoint
	}{
		{
			name: "2.4GHz",
			bss: wifi.BSS{
				BSSID:     net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
				SSID:      "home",
				Frequency: 2412,
			},
			expected: AccessPoint{
				Address:      Address{Family: wext.ARPHRDEther, Hardware: [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}},
				HasName:      true,
				Name:         "home",
				NameFlag:     EssidOn,
				HasFrequency: true,
				Frequency:    Frequency{Value: 2.412e9, Flag: FreqFixed},
			},
		},
		{
			name: "hidden 5GHz",
			bss: wifi.BSS{
				BSSID:     net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff},
				Frequency: 5180,
			},
			expected: AccessPoint{
				Address:      Address{Family: wext.ARPHRDEther, Hardware: [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}},
				HasName:      true,
				NameFlag:     EssidOff,
				HasFrequency: true,
				Frequency:    Frequency{Value: 5.18e9, Flag: FreqFixed},
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			accessPoint := accessPointFromBSS(&testCase.bss)
			require.Equal(t, testCase.expected, accessPoint)
			hz, isHz := accessPoint.Frequency.Hertz()
			require.True(t, isHz)
			require.Equal(t, testCase.expected.Frequency.Value, hz)
		})
	}
}

func TestAccessPointsFromBSS(t *testing.T) {
	t.Parallel()
	accessPoints := accessPointsFromBSS([]*wifi.BSS{
		{BSSID: net.HardwareAddr{1, 2, 3, 4, 5, 6}, SSID: "first", Frequency: 2437},
		{BSSID: net.HardwareAddr{1, 2, 3, 4, 5, 6, 7, 8}, SSID: "eui64", Frequency: 2437},
		{SSID: "no bssid", Frequency: 2462},
		{BSSID: net.HardwareAddr{6, 5, 4, 3, 2, 1}, SSID: "second", Frequency: 5745},
	})
	require.Len(t, accessPoints, 2)
	require.Equal(t, "first", accessPoints[0].Name)
	require.Equal(t, [6]byte{1, 2, 3, 4, 5, 6}, accessPoints[0].Address.Hardware)
	require.Equal(t, "second", accessPoints[1].Name)
	require.Equal(t, [6]byte{6, 5, 4, 3, 2, 1}, accessPoints[1].Address.Hardware)

	require.NotNil(t, accessPointsFromBSS(nil))
	require.Empty(t, accessPointsFromBSS(nil))
}

func TestOpenNL80211Error(t *testing.T) {
	t.Parallel()
	err := openNL80211Error(os.NewSyscallError("genetlink", syscall.ENOENT))
	require.ErrorIs(t, err, ErrUnsupported)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.NotErrorIs(t, err, ErrDevice)

	err = openNL80211Error(syscall.EPERM)
	require.ErrorIs(t, err, ErrPermissionDenied)

	err = openNL80211Error(syscall.EPROTONOSUPPORT)
	require.ErrorIs(t, err, ErrDevice)
}
