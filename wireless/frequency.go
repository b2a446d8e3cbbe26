package wireless

import (
	"math"
	"strconv"

	"github.com/sagernet/sing-wireless/common/wext"
)

// channelThreshold separates channel numbers from frequencies: drivers report
// small values as a channel index rather than a frequency in Hz.
const channelThreshold = 1000

// Frequency is either a frequency in Hz or, when Channel is set, a channel number.
type Frequency struct {
	Value   float64
	Channel bool
	Flag    FreqFlag
}

func frequencyFrom(freq wext.Freq) Frequency {
	value := freqToFloat(freq)
	return Frequency{
		Value:   value,
		Channel: value < channelThreshold,
		Flag:    FreqFlag(freq.Flags & wext.FreqFixed),
	}
}

// Hertz returns the frequency, false if the value is a channel number.
func (f Frequency) Hertz() (float64, bool) {
	return f.Value, !f.Channel
}

// ChannelNumber returns the channel index, false if the value is a frequency.
func (f Frequency) ChannelNumber() (int, bool) {
	return int(f.Value), f.Channel
}

func (f Frequency) String() string {
	if f.Channel {
		return "channel " + strconv.Itoa(int(f.Value))
	}
	switch {
	case f.Value >= 1e9:
		return strconv.FormatFloat(f.Value/1e9, 'f', -1, 64) + " GHz"
	case f.Value >= 1e6:
		return strconv.FormatFloat(f.Value/1e6, 'f', -1, 64) + " MHz"
	case f.Value >= 1e3:
		return strconv.FormatFloat(f.Value/1e3, 'f', -1, 64) + " kHz"
	default:
		return strconv.FormatFloat(f.Value, 'f', -1, 64) + " Hz"
	}
}

func freqToFloat(freq wext.Freq) float64 {
	return float64(freq.M) * math.Pow10(int(freq.E))
}

// floatToFreq keeps six significant digits for values above 10^8, so that
// frequencies in Hz fit the 32 bit mantissa.
func floatToFreq(value float64) wext.Freq {
	if value < 1 {
		return wext.Freq{M: int32(value)}
	}
	exponent := int(math.Floor(math.Log10(value)))
	if exponent > 8 {
		return wext.Freq{
			M: int32(math.Floor(value/math.Pow10(exponent-6))) * 100,
			E: int16(exponent - 8),
		}
	}
	return wext.Freq{M: int32(value)}
}
