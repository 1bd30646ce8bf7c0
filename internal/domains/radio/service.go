package radio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

type (
	IShellService interface {
		ExecOutput(command commands.ICommand) (output []byte, err error)
	}

	Service struct {
		shellService IShellService
		sysClassNet  string
	}
)

func NewService(shellService IShellService) *Service {
	return &Service{
		shellService: shellService,
		sysClassNet:  constants.SysClassNet,
	}
}

// Probe inspects one wireless interface and reports its identity and
// capabilities. It never mutates interface state.
func (s *Service) Probe(interfaceName string) (identity entities.RadioIdentity, err error) {
	if !s.isWireless(interfaceName) {
		return identity, fmt.Errorf("Probe: %s: %w", interfaceName, errs.ErrNoSuchInterface)
	}

	identity.InterfaceName = interfaceName

	infoOutput, err := s.shellService.ExecOutput(commands.NewIfaceInfoCmd(interfaceName))
	if err != nil {
		return identity, fmt.Errorf("Probe: %w", err)
	}

	info := parseIfaceInfo(infoOutput)
	identity.PhyName = info.phyName
	identity.MACAddress = info.macAddress

	if lo.IsEmpty(identity.PhyName) {
		return identity, fmt.Errorf("Probe: %s: phy not reported: %w", interfaceName, errs.ErrUnsupportedHardware)
	}

	phyOutput, err := s.shellService.ExecOutput(commands.NewPhyInfoCmd(identity.PhyName))
	if err != nil {
		return identity, fmt.Errorf("Probe: %w", err)
	}

	caps := parsePhyInfo(phyOutput)
	identity.SupportedModes = caps.modes
	identity.SupportsConcurrent = caps.supportsConcurrent

	if !identity.SupportsStation() && !identity.SupportsAccessPoint() {
		return identity, fmt.Errorf("Probe: %s supports neither station nor AP mode: %w",
			interfaceName, errs.ErrUnsupportedHardware)
	}

	// driver name is best effort, some drivers do not answer ethtool
	if driverOutput, driverErr := s.shellService.ExecOutput(commands.NewDriverInfoCmd(interfaceName)); driverErr == nil {
		identity.Driver = parseDriverName(driverOutput)
	}

	return identity, nil
}

// DetectRadios probes every wireless interface on the system concurrently
// and returns the ones that answered.
func (s *Service) DetectRadios() (identities []entities.RadioIdentity, err error) {
	names, err := s.listWireless()
	if err != nil {
		return identities, fmt.Errorf("DetectRadios: %w", err)
	}

	if len(names) == 0 {
		return identities, nil
	}

	p := pool.NewWithResults[*entities.RadioIdentity]().WithMaxGoroutines(len(names))
	for _, name := range names {
		p.Go(func() *entities.RadioIdentity {
			identity, probeErr := s.Probe(name)
			if probeErr != nil {
				return nil
			}

			return &identity
		})
	}

	for _, identity := range p.Wait() {
		if identity != nil {
			identities = append(identities, *identity)
		}
	}

	sort.Slice(identities, func(i, j int) bool {
		return identities[i].InterfaceName < identities[j].InterfaceName
	})

	return identities, nil
}

// CurrentMode reports the interface mode via the same read path Probe
// uses; the mode controller verifies transitions against it.
func (s *Service) CurrentMode(interfaceName string) (mode entities.InterfaceMode, err error) {
	if !s.isWireless(interfaceName) {
		return mode, fmt.Errorf("CurrentMode: %s: %w", interfaceName, errs.ErrNoSuchInterface)
	}

	infoOutput, err := s.shellService.ExecOutput(commands.NewIfaceInfoCmd(interfaceName))
	if err != nil {
		return mode, fmt.Errorf("CurrentMode: %w", err)
	}

	info := parseIfaceInfo(infoOutput)
	if !s.isAdminUp(interfaceName) {
		return entities.InterfaceModeDown, nil
	}

	switch info.ifaceType {
	case "managed":
		return entities.InterfaceModeStation, nil
	case "AP":
		return entities.InterfaceModeAccessPoint, nil
	default:
		return entities.InterfaceModeDown, nil
	}
}

func (s *Service) isWireless(interfaceName string) bool {
	if strings.Contains(interfaceName, "/") {
		return false
	}

	_, err := os.Stat(filepath.Join(s.sysClassNet, interfaceName, "phy80211"))
	return err == nil
}

func (s *Service) isAdminUp(interfaceName string) bool {
	data, err := os.ReadFile(filepath.Join(s.sysClassNet, interfaceName, "flags"))
	if err != nil {
		return false
	}

	// IFF_UP is bit 0 of the hex flags value
	flags, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(string(data)), "0x"), 16, 64)
	if err != nil {
		return false
	}

	return flags&1 == 1
}

func (s *Service) listWireless() (names []string, err error) {
	dirEntries, err := os.ReadDir(s.sysClassNet)
	if err != nil {
		return names, fmt.Errorf("listWireless: %w", err)
	}

	for _, entry := range dirEntries {
		if s.isWireless(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}
