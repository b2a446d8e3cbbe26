package wireless

import (
	"syscall"

	E "github.com/sagernet/sing-wireless/common/exceptions"
)

var (
	ErrPermissionDenied = E.New("permission denied")
	ErrUnsupported      = E.New("operation not supported by interface")
	ErrDeviceBusy       = E.New("device busy")
	ErrDevice           = E.New("device error")
	ErrResultTooLarge   = E.New("scan result too large")
	ErrMalformedStream  = E.New("malformed event stream")
	ErrSessionState     = E.New("invalid scan session state")
	ErrInvalidArgument  = E.New("invalid argument")
)

// kernelError classifies a failed request by its errno. The result matches
// both the classification sentinel and the original errno.
func kernelError(err error, message ...any) error {
	cause := E.Cause(err, message...)
	errno, isErrno := E.Cast[syscall.Errno](err)
	if !isErrno {
		return E.Cause1(ErrDevice, cause)
	}
	switch errno {
	case syscall.EPERM, syscall.EACCES:
		return E.Cause1(ErrPermissionDenied, cause)
	case syscall.EOPNOTSUPP:
		return E.Cause1(ErrUnsupported, cause)
	case syscall.EBUSY:
		return E.Cause1(ErrDeviceBusy, cause)
	default:
		return E.Cause1(ErrDevice, cause)
	}
}
