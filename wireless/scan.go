package wireless

import (
	"errors"
	"syscall"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

type ScanState uint8

const (
	ScanStateIdle ScanState = iota
	ScanStateRequested
	ScanStatePending
	ScanStateReady
	ScanStateCollected
	ScanStateFailed
)

var scanStateNames = [...]string{
	ScanStateIdle:      "idle",
	ScanStateRequested: "requested",
	ScanStatePending:   "pending",
	ScanStateReady:     "ready",
	ScanStateCollected: "collected",
	ScanStateFailed:    "failed",
}

func (s ScanState) String() string {
	if int(s) < len(scanStateNames) {
		return scanStateNames[s]
	}
	return "unknown"
}

type ReadyState uint8

const (
	ScanPending ReadyState = iota
	ScanReady
)

var readyStateNames = [...]string{
	ScanPending: "pending",
	ScanReady:   "ready",
}

func (s ReadyState) String() string {
	if int(s) < len(readyStateNames) {
		return readyStateNames[s]
	}
	return "unknown"
}

// Scan is one initiate, poll, collect cycle on a device. The kernel runs the
// scan asynchronously and rejects a second one on the same interface with
// ErrDeviceBusy. Scan never sleeps: the caller picks the polling interval,
// and an abandoned scan simply completes in the driver.
type Scan struct {
	device  *Device
	options ScanOptions
	state   ScanState
}

func NewScan(device *Device, options ScanOptions) (*Scan, error) {
	options, err := options.normalize()
	if err != nil {
		return nil, err
	}
	return &Scan{device: device, options: options}, nil
}

// StartScan returns an idle scan session on d.
func (d *Device) StartScan(options ScanOptions) (*Scan, error) {
	return NewScan(d, options)
}

func (s *Scan) State() ScanState {
	return s.state
}

// Initiate asks the driver to start scanning. It requires CAP_NET_ADMIN.
func (s *Scan) Initiate() error {
	if s.state != ScanStateIdle {
		return s.stateError("initiate")
	}
	var data wext.RequestData
	err := s.device.ioctl(wext.SIOCSIWSCAN, &data)
	if err != nil {
		s.state = ScanStateFailed
		return kernelError(err, "start scan on ", s.device.name)
	}
	s.state = ScanStateRequested
	logger.Debug("scan requested on ", s.device.name)
	return nil
}

// Status performs a single non-blocking query for scan completion.
func (s *Scan) Status() (ReadyState, error) {
	switch s.state {
	case ScanStateRequested, ScanStatePending, ScanStateReady:
	default:
		return ScanPending, s.stateError("poll")
	}
	// a zero length buffer: E2BIG means results are waiting
	data := wext.RequestData{Point: wext.Point{Data: make([]byte, 1)}}
	err := s.device.ioctl(wext.SIOCGIWSCAN, &data)
	switch {
	case err == nil, E.IsMulti(err, syscall.E2BIG, syscall.ENODATA):
		s.state = ScanStateReady
		return ScanReady, nil
	case errors.Is(err, syscall.EAGAIN):
		s.state = ScanStatePending
		return ScanPending, nil
	default:
		s.state = ScanStateFailed
		return ScanPending, kernelError(err, "poll scan on ", s.device.name)
	}
}

// Collect retrieves and decodes the results once Status reported ScanReady.
// A scan that found nothing returns an empty list.
func (s *Scan) Collect() ([]AccessPoint, error) {
	if s.state != ScanStateReady {
		return nil, s.stateError("collect")
	}
	buffer, err := s.device.fetchScanDump(s.options)
	if err != nil {
		s.state = ScanStateFailed
		return nil, err
	}
	if buffer == nil {
		s.state = ScanStateCollected
		return make([]AccessPoint, 0), nil
	}
	defer buffer.Release()
	if s.options.DumpWriter != nil {
		_, err = buffer.WriteTo(s.options.DumpWriter)
		if err != nil {
			s.state = ScanStateFailed
			return nil, E.Cause(err, "write scan dump")
		}
	}
	accessPoints, err := DecodeScan(buffer.Bytes())
	if err != nil {
		s.state = ScanStateFailed
		return nil, E.Cause(err, "decode scan results of ", s.device.name)
	}
	s.state = ScanStateCollected
	logger.Debug("collected ", len(accessPoints), " access points from ", buffer.Len(), " bytes on ", s.device.name)
	return accessPoints, nil
}

func (s *Scan) stateError(operation string) error {
	return E.Cause1(ErrSessionState, E.New("cannot ", operation, " ", s.state, " scan on ", s.device.name))
}
