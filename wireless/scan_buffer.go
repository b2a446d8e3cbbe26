package wireless

import (
	"errors"
	"io"
	"syscall"

	"github.com/sagernet/sing-wireless/common/buf"
	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

const (
	DefaultScanBufferSize = wext.ScanMaxData
	// MaxScanBufferSize is the largest length iw_point can carry.
	MaxScanBufferSize = 0xFFFF
)

type ScanOptions struct {
	// InitialBufferSize is the first buffer offered to the kernel, DefaultScanBufferSize if zero.
	InitialBufferSize int
	// MaxBufferSize bounds buffer growth, MaxScanBufferSize if zero.
	MaxBufferSize int
	// DumpWriter, if set, receives a copy of the raw event stream before decoding.
	DumpWriter io.Writer
}

// Validate reports sizes outside [1, MaxScanBufferSize] and a maximum below
// the initial size. Zero sizes select the defaults and are valid.
func (o ScanOptions) Validate() error {
	_, err := o.normalize()
	return err
}

func (o ScanOptions) normalize() (ScanOptions, error) {
	if o.InitialBufferSize == 0 {
		o.InitialBufferSize = DefaultScanBufferSize
	}
	if o.MaxBufferSize == 0 {
		o.MaxBufferSize = MaxScanBufferSize
	}
	if o.InitialBufferSize < 1 || o.InitialBufferSize > MaxScanBufferSize {
		return o, E.Cause1(ErrInvalidArgument, E.New("initial scan buffer size ", o.InitialBufferSize, " out of range [1, ", MaxScanBufferSize, "]"))
	}
	if o.MaxBufferSize < o.InitialBufferSize || o.MaxBufferSize > MaxScanBufferSize {
		return o, E.Cause1(ErrInvalidArgument, E.New("max scan buffer size ", o.MaxBufferSize, " out of range [", o.InitialBufferSize, ", ", MaxScanBufferSize, "]"))
	}
	return o, nil
}

// fetchScanDump reads the scan result into a buffer that doubles on E2BIG, or
// jumps to the size the kernel asked for if that is larger, up to
// MaxBufferSize. A nil buffer means the kernel had no data.
func (d *Device) fetchScanDump(options ScanOptions) (*buf.Buffer, error) {
	size := options.InitialBufferSize
	for {
		buffer := buf.NewSize(size)
		data := wext.RequestData{Point: wext.Point{Data: buffer.FreeBytes(), Length: uint16(size)}}
		err := d.ioctl(wext.SIOCGIWSCAN, &data)
		if err == nil {
			buffer.Truncate(min(int(data.Point.Length), size))
			return buffer, nil
		}
		buffer.Release()
		switch {
		case errors.Is(err, syscall.E2BIG):
			if size >= options.MaxBufferSize {
				return nil, E.Cause1(ErrResultTooLarge, E.New("scan results of ", d.name, " exceed ", options.MaxBufferSize, " bytes"))
			}
			nextSize := min(max(size*2, int(data.Point.Length)), options.MaxBufferSize)
			logger.Debug("scan buffer of ", size, " bytes too small for ", d.name, ", retrying with ", nextSize)
			size = nextSize
		case errors.Is(err, syscall.ENODATA):
			return nil, nil
		default:
			return nil, kernelError(err, "get scan results of ", d.name)
		}
	}
}
