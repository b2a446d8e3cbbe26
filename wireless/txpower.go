package wireless

import (
	"math"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

type TxPower struct {
	Value    int
	Flag     TxPowerFlag
	Disabled bool
}

func (d *Device) TxPower() (TxPower, error) {
	var data wext.RequestData
	err := d.ioctl(wext.SIOCGIWTXPOW, &data)
	if err != nil {
		return TxPower{}, kernelError(err, "get txpower of ", d.name)
	}
	return TxPower{
		Value:    int(data.Param.Value),
		Flag:     TxPowerFlag(data.Param.Flags & wext.TxPowerType),
		Disabled: data.Param.Disabled != 0,
	}, nil
}

func (d *Device) SetTxPower(value int, flag TxPowerFlag) error {
	if int(flag) >= len(txPowerFlagNames) {
		return E.Cause1(ErrInvalidArgument, E.New("unknown txpower flag ", uint8(flag)))
	}
	data := wext.RequestData{Param: wext.Param{
		Value: int32(value),
		Fixed: 1,
		Flags: uint16(flag),
	}}
	err := d.ioctl(wext.SIOCSIWTXPOW, &data)
	if err != nil {
		return kernelError(err, "set txpower of ", d.name)
	}
	return nil
}

// conversionEpsilon absorbs the rounding of math.Log10 and math.Pow on exact powers of ten.
const conversionEpsilon = 1e-9

func DBmToMilliWatt(dbm int) int {
	return int(math.Floor(math.Pow(10, float64(dbm)/10) + conversionEpsilon))
}

func MilliWattToDBm(milliWatt int) int {
	if milliWatt <= 0 {
		return math.MinInt32
	}
	return int(math.Ceil(10*math.Log10(float64(milliWatt)) - conversionEpsilon))
}
