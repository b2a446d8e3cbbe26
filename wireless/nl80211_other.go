//go:build !linux

package wireless

import (
	"context"

	E "github.com/sagernet/sing-wireless/common/exceptions"
)

func ScanNL80211(ctx context.Context, name string) ([]AccessPoint, error) {
	return nil, E.Cause1(ErrUnsupported, E.New("nl80211 is only available on linux"))
}
