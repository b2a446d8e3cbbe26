package wireless

import (
	"context"
	"time"

	E "github.com/sagernet/sing-wireless/common/exceptions"
)

const DefaultPollInterval = 250 * time.Millisecond

// WaitScan runs a full scan on device, polling every interval until the
// results are ready or ctx is done.
func WaitScan(ctx context.Context, device *Device, options ScanOptions, interval time.Duration) ([]AccessPoint, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	scan, err := NewScan(device, options)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, E.Cause(ctx.Err(), "wait for scan on ", device.name)
	}
	err = scan.Initiate()
	if err != nil {
		return nil, err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		state, err := scan.Status()
		if err != nil {
			return nil, err
		}
		if state == ScanReady {
			return scan.Collect()
		}
		select {
		case <-ctx.Done():
			return nil, E.Cause(ctx.Err(), "wait for scan on ", device.name)
		case <-ticker.C:
		}
	}
}
