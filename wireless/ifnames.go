package wireless

import (
	"bufio"
	"io"
	"os"
	"strings"

	E "github.com/sagernet/sing-wireless/common/exceptions"
)

const ProcNetWireless = "/proc/net/wireless"

// ListInterfaces returns the interfaces the kernel lists in /proc/net/wireless.
func ListInterfaces() ([]string, error) {
	file, err := os.Open(ProcNetWireless)
	if err != nil {
		return nil, E.Cause(err, "open ", ProcNetWireless)
	}
	defer file.Close()
	return ParseProcNetWireless(file)
}

// ParseProcNetWireless reads the format written by net/wireless/wext-proc.c:
// two header lines, then one "name: status ..." line per interface.
func ParseProcNetWireless(reader io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(reader)
	names := make([]string, 0)
	var lineNumber int
	for scanner.Scan() {
		lineNumber++
		if lineNumber <= 2 {
			continue
		}
		line := scanner.Text()
		name, _, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, E.Cause(err, "read ", ProcNetWireless)
	}
	return names, nil
}
