package wext_test

import (
	"testing"

	"github.com/sagernet/sing-wireless/common/wext"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestConnLoopbackIsNotWireless(t *testing.T) {
	t.Parallel()
	conn, err := wext.Open()
	if err != nil {
		t.Skip("control socket unavailable: ", err)
	}
	defer conn.Close()
	var data wext.RequestData
	err = conn.Ioctl("lo", wext.SIOCGIWNAME, &data)
	require.Error(t, err)
}

func TestConnRejectsLongName(t *testing.T) {
	t.Parallel()
	conn, err := wext.Open()
	if err != nil {
		t.Skip("control socket unavailable: ", err)
	}
	defer conn.Close()
	var data wext.RequestData
	require.ErrorIs(t, conn.Ioctl("interface-name-too-long", wext.SIOCGIWNAME, &data), unix.EINVAL)
	require.ErrorIs(t, conn.Ioctl("lo", 0x8BFF, &data), unix.EOPNOTSUPP)
}
