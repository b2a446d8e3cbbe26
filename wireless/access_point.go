package wireless

// AccessPoint is one cell reported by a scan. Each optional field has its own
// presence flag; a missing field means the driver emitted no such event.
type AccessPoint struct {
	Address Address

	HasName  bool
	Name     string
	NameFlag EssidFlag

	HasFrequency bool
	Frequency    Frequency

	HasMode bool
	Mode    Mode

	HasBitrate bool
	Bitrate    Bitrate
}

type Bitrate struct {
	Value int
	Flag  BitrateFlag
}
