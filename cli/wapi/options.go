package main

import (
	"os"
	"time"

	E "github.com/sagernet/sing-wireless/common/exceptions"
	"github.com/sagernet/sing-wireless/common/json"
	"github.com/sagernet/sing-wireless/common/json/badoption"
	"github.com/sagernet/sing-wireless/wireless"
)

// Options are filled from flags first; a configuration file only supplies
// values the flags left unset.
type Options struct {
	Interface     string             `json:"interface,omitempty"`
	PollInterval  badoption.Duration `json:"poll_interval,omitempty"`
	Timeout       badoption.Duration `json:"timeout,omitempty"`
	BufferSize    int                `json:"buffer_size,omitempty"`
	MaxBufferSize int                `json:"max_buffer_size,omitempty"`
	DumpPath      string             `json:"dump,omitempty"`
	NL80211       bool               `json:"nl80211,omitempty"`
	JSON          bool               `json:"json,omitempty"`
	Verbose       bool               `json:"verbose,omitempty"`
	ConfigPath    string             `json:"-"`
}

const defaultTimeout = 30 * time.Second

func (o *Options) Load() error {
	if o.ConfigPath == "" {
		return nil
	}
	content, err := os.ReadFile(o.ConfigPath)
	if err != nil {
		return E.Cause(err, "read config file")
	}
	fileOptions, err := json.UnmarshalExtended[Options](content)
	if err != nil {
		return E.Cause(err, "decode config file")
	}
	o.Merge(fileOptions)
	return nil
}

func (o *Options) Merge(fileOptions Options) {
	if o.Interface == "" {
		o.Interface = fileOptions.Interface
	}
	if o.PollInterval == 0 {
		o.PollInterval = fileOptions.PollInterval
	}
	if o.Timeout == 0 {
		o.Timeout = fileOptions.Timeout
	}
	if o.BufferSize == 0 {
		o.BufferSize = fileOptions.BufferSize
	}
	if o.MaxBufferSize == 0 {
		o.MaxBufferSize = fileOptions.MaxBufferSize
	}
	if o.DumpPath == "" {
		o.DumpPath = fileOptions.DumpPath
	}
	o.NL80211 = o.NL80211 || fileOptions.NL80211
	o.JSON = o.JSON || fileOptions.JSON
	o.Verbose = o.Verbose || fileOptions.Verbose
}

// InterfaceName prefers the positional argument over the configured interface.
func (o *Options) InterfaceName(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if o.Interface == "" {
		return "", E.New("missing interface name")
	}
	return o.Interface, nil
}

func (o *Options) ScanTimeout() time.Duration {
	if o.Timeout <= 0 {
		return defaultTimeout
	}
	return o.Timeout.Build()
}

// ScanOptions converts and validates the buffer settings.
func (o *Options) ScanOptions() (wireless.ScanOptions, error) {
	scanOptions := wireless.ScanOptions{
		InitialBufferSize: o.BufferSize,
		MaxBufferSize:     o.MaxBufferSize,
	}
	err := scanOptions.Validate()
	if err != nil {
		return scanOptions, err
	}
	return scanOptions, nil
}
