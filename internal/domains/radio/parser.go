package radio

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/samber/lo"
)

type ifaceInfo struct {
	phyName    string
	macAddress string
	ifaceType  string
}

// parseIfaceInfo extracts identity fields from `iw dev <iface> info`.
func parseIfaceInfo(output []byte) (info ifaceInfo) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "wiphy "):
			info.phyName = "phy" + strings.TrimSpace(strings.TrimPrefix(line, "wiphy"))

		case strings.HasPrefix(line, "addr "):
			info.macAddress = strings.TrimSpace(strings.TrimPrefix(line, "addr"))

		case strings.HasPrefix(line, "type "):
			info.ifaceType = strings.TrimSpace(strings.TrimPrefix(line, "type"))
		}
	}

	return info
}

type phyCapabilities struct {
	modes              []string
	supportsConcurrent bool
}

// parsePhyInfo extracts supported interface modes and the valid interface
// combinations from `iw phy <phy> info`. A radio is classified as
// concurrent-capable when a combination block allows managed and AP
// interfaces to coexist.
func parsePhyInfo(output []byte) (caps phyCapabilities) {
	var (
		inModes        bool
		inCombinations bool
	)
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		rawLine := scanner.Text()
		line := strings.TrimSpace(rawLine)

		switch {
		case strings.HasPrefix(line, "Supported interface modes"):
			inModes = true
			inCombinations = false
			continue

		case strings.HasPrefix(line, "valid interface combinations"):
			inModes = false
			inCombinations = true
			continue

		case lo.IsEmpty(line):
			continue
		}

		// section headers in iw output are unindented or singly indented
		// bullet-free lines; a new header ends the current section
		if !strings.HasPrefix(line, "*") && !strings.HasPrefix(line, "#") && strings.Contains(line, ":") {
			inModes = false
			inCombinations = false
			continue
		}

		if inModes && strings.HasPrefix(line, "*") {
			mode := strings.TrimSpace(strings.TrimPrefix(line, "*"))
			caps.modes = append(caps.modes, mode)
		}

		if inCombinations && strings.Contains(line, "managed") && strings.Contains(line, "AP") {
			caps.supportsConcurrent = true
		}
	}

	return caps
}

// parseDriverName extracts the driver field from `ethtool -i` output.
func parseDriverName(output []byte) (driver string) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if value, found := strings.CutPrefix(line, "driver:"); found {
			return strings.TrimSpace(value)
		}
	}

	return ""
}
