package wireless

import (
	"bytes"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/wext"
)

func (d *Device) Frequency() (Frequency, error) {
	var data wext.RequestData
	err := d.ioctl(wext.SIOCGIWFREQ, &data)
	if err != nil {
		return Frequency{}, kernelError(err, "get frequency of ", d.name)
	}
	return frequencyFrom(data.Freq), nil
}

func (d *Device) SetFrequency(value float64, flag FreqFlag) error {
	if value < 0 {
		return E.Cause1(ErrInvalidArgument, E.New("negative frequency ", value))
	}
	var data wext.RequestData
	data.Freq = floatToFreq(value)
	if flag == FreqFixed {
		data.Freq.Flags = wext.FreqFixed
	}
	err := d.ioctl(wext.SIOCSIWFREQ, &data)
	if err != nil {
		return kernelError(err, "set frequency of ", d.name)
	}
	return nil
}

func (d *Device) ESSID() (string, EssidFlag, error) {
	essid := make([]byte, wext.EssidMaxSize+1)
	data := wext.RequestData{Point: wext.Point{Data: essid, Length: uint16(len(essid))}}
	err := d.ioctl(wext.SIOCGIWESSID, &data)
	if err != nil {
		return "", EssidOff, kernelError(err, "get essid of ", d.name)
	}
	essid = essid[:min(int(data.Point.Length), wext.EssidMaxSize)]
	if index := bytes.IndexByte(essid, 0); index != -1 {
		essid = essid[:index]
	}
	flag := EssidOff
	if data.Point.Flags != 0 {
		flag = EssidOn
	}
	return string(essid), flag, nil
}

func (d *Device) SetESSID(essid string, flag EssidFlag) error {
	if len(essid) > wext.EssidMaxSize {
		return E.Cause1(ErrInvalidArgument, E.New("essid longer than ", wext.EssidMaxSize, " bytes"))
	}
	data := wext.RequestData{Point: wext.Point{Data: []byte(essid), Length: uint16(len(essid))}}
	if flag == EssidOn {
		data.Point.Flags = 1
	}
	err := d.ioctl(wext.SIOCSIWESSID, &data)
	if err != nil {
		return kernelError(err, "set essid of ", d.name)
	}
	return nil
}

func (d *Device) Mode() (Mode, error) {
	var data wext.RequestData
	err := d.ioctl(wext.SIOCGIWMODE, &data)
	if err != nil {
		return 0, kernelError(err, "get mode of ", d.name)
	}
	return Mode(data.Uint), nil
}

func (d *Device) SetMode(mode Mode) error {
	if int(mode) >= len(modeNames) {
		return E.Cause1(ErrInvalidArgument, E.New("unknown mode ", uint32(mode)))
	}
	data := wext.RequestData{Uint: uint32(mode)}
	err := d.ioctl(wext.SIOCSIWMODE, &data)
	if err != nil {
		return kernelError(err, "set mode of ", d.name)
	}
	return nil
}

// AccessPointAddress returns the associated access point; see Address for the
// "any" and "off" sentinels.
func (d *Device) AccessPointAddress() (Address, error) {
	var data wext.RequestData
	err := d.ioctl(wext.SIOCGIWAP, &data)
	if err != nil {
		return Address{}, kernelError(err, "get access point of ", d.name)
	}
	return addressFromSockaddr(data.Addr), nil
}

func (d *Device) SetAccessPointAddress(address Address) error {
	if address.Family != wext.ARPHRDEther {
		return E.Cause1(ErrInvalidArgument, E.New("access point address family ", address.Family, " is not ARPHRD_ETHER"))
	}
	data := wext.RequestData{Addr: address.sockaddr()}
	err := d.ioctl(wext.SIOCSIWAP, &data)
	if err != nil {
		return kernelError(err, "set access point of ", d.name)
	}
	return nil
}

func (d *Device) Bitrate() (Bitrate, error) {
	var data wext.RequestData
	err := d.ioctl(wext.SIOCGIWRATE, &data)
	if err != nil {
		return Bitrate{}, kernelError(err, "get bitrate of ", d.name)
	}
	return bitrateFrom(data.Param), nil
}

func (d *Device) SetBitrate(value int, flag BitrateFlag) error {
	if value < 0 {
		return E.Cause1(ErrInvalidArgument, E.New("negative bitrate ", value))
	}
	data := wext.RequestData{Param: wext.Param{Value: int32(value)}}
	if flag == BitrateFixed {
		data.Param.Fixed = 1
	}
	err := d.ioctl(wext.SIOCSIWRATE, &data)
	if err != nil {
		return kernelError(err, "set bitrate of ", d.name)
	}
	return nil
}

func bitrateFrom(param wext.Param) Bitrate {
	bitrate := Bitrate{Value: int(param.Value)}
	if param.Fixed != 0 {
		bitrate.Flag = BitrateFixed
	}
	return bitrate
}

// WEVersion returns the wireless extensions version the driver was compiled against.
func (d *Device) WEVersion() (int, error) {
	rangeBuffer := make([]byte, 2048)
	data := wext.RequestData{Point: wext.Point{Data: rangeBuffer, Length: uint16(len(rangeBuffer))}}
	err := d.ioctl(wext.SIOCGIWRANGE, &data)
	if err != nil {
		return 0, kernelError(err, "get range of ", d.name)
	}
	if int(data.Point.Length) <= wext.RangeWEVersionOffset {
		return 0, E.Cause1(ErrUnsupported, E.New("range of ", d.name, " is ", data.Point.Length, " bytes, too short to carry a version"))
	}
	return int(rangeBuffer[wext.RangeWEVersionOffset]), nil
}
