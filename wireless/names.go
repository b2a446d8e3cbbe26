package wireless

import (
	"strconv"
	"strings"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

// Mode is the operating mode of an interface, numbered as IW_MODE_*.
type Mode uint32

const (
	ModeAuto Mode = iota
	ModeAdHoc
	ModeManaged
	ModeMaster
	ModeRepeat
	ModeSecond
	ModeMonitor
	ModeMesh
)

var modeNames = [...]string{
	ModeAuto:    "auto",
	ModeAdHoc:   "ad-hoc",
	ModeManaged: "managed",
	ModeMaster:  "master",
	ModeRepeat:  "repeat",
	ModeSecond:  "second",
	ModeMonitor: "monitor",
	ModeMesh:    "mesh",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown(" + strconv.FormatUint(uint64(m), 10) + ")"
}

func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(name)
	for mode, modeName := range modeNames {
		if modeName == name {
			return Mode(mode), nil
		}
	}
	switch name {
	case "adhoc":
		return ModeAdHoc, nil
	case "infra", "infrastructure":
		return ModeManaged, nil
	}
	return 0, E.Cause1(ErrInvalidArgument, E.New("unknown mode ", name))
}

type FreqFlag uint8

const (
	FreqAuto  FreqFlag = wext.FreqAuto
	FreqFixed FreqFlag = wext.FreqFixed
)

var freqFlagNames = [...]string{
	FreqAuto:  "auto",
	FreqFixed: "fixed",
}

func (f FreqFlag) String() string {
	if int(f) < len(freqFlagNames) {
		return freqFlagNames[f]
	}
	return "unknown"
}

type EssidFlag uint8

const (
	EssidOn EssidFlag = iota
	EssidOff
)

var essidFlagNames = [...]string{
	EssidOn:  "on",
	EssidOff: "off",
}

func (f EssidFlag) String() string {
	if int(f) < len(essidFlagNames) {
		return essidFlagNames[f]
	}
	return "unknown"
}

type BitrateFlag uint8

const (
	BitrateAuto BitrateFlag = iota
	BitrateFixed
)

var bitrateFlagNames = [...]string{
	BitrateAuto:  "auto",
	BitrateFixed: "fixed",
}

func (f BitrateFlag) String() string {
	if int(f) < len(bitrateFlagNames) {
		return bitrateFlagNames[f]
	}
	return "unknown"
}

type TxPowerFlag uint8

const (
	TxPowerDBm       TxPowerFlag = wext.TxPowerDBm
	TxPowerMilliWatt TxPowerFlag = wext.TxPowerMilliWatt
	TxPowerRelative  TxPowerFlag = wext.TxPowerRelative
)

var txPowerFlagNames = [...]string{
	TxPowerDBm:       "dBm",
	TxPowerMilliWatt: "mW",
	TxPowerRelative:  "relative",
}

func (f TxPowerFlag) String() string {
	if int(f) < len(txPowerFlagNames) {
		return txPowerFlagNames[f]
	}
	return "unknown"
}

func ParseTxPowerFlag(name string) (TxPowerFlag, error) {
	for flag, flagName := range txPowerFlagNames {
		if strings.EqualFold(flagName, name) {
			return TxPowerFlag(flag), nil
		}
	}
	return 0, E.Cause1(ErrInvalidArgument, E.New("unknown txpower unit ", name))
}
