package accesspoint

import (
	"bufio"
	"bytes"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

var macPattern = regexp.MustCompile(`(?i)\b([0-9a-f]{2}(?::[0-9a-f]{2}){5})\b`)

// ClientTracker merges association events from hostapd and lease events
// from dnsmasq into one record per MAC. Records are mutated only by
// events sourced from the two processes, never speculatively. A client
// that associated but has not requested a lease yet is kept with an
// unknown IP.
type ClientTracker struct {
	mx      sync.Mutex
	records map[string]*entities.ClientRecord
	joined  map[string]time.Time

	onEvent func(eventType entities.EventType, record entities.ClientRecord)
}

func NewClientTracker(onEvent func(eventType entities.EventType, record entities.ClientRecord)) *ClientTracker {
	return &ClientTracker{
		records: make(map[string]*entities.ClientRecord),
		joined:  make(map[string]time.Time),
		onEvent: onEvent,
	}
}

func (t *ClientTracker) OnAssociate(mac string) {
	mac = normalizeMAC(mac)

	t.mx.Lock()
	record, exists := t.records[mac]
	if !exists {
		record = &entities.ClientRecord{
			MAC: mac,
			IP:  entities.ClientIPUnknown,
		}
		t.records[mac] = record
		t.joined[mac] = time.Now()
	}
	record.LastSeen = time.Now()
	snapshot := *record
	t.mx.Unlock()

	if !exists {
		t.onEvent(entities.EventClientJoined, snapshot)
	}
}

func (t *ClientTracker) OnDisassociate(mac string) {
	mac = normalizeMAC(mac)

	t.mx.Lock()
	record, exists := t.records[mac]
	if !exists {
		t.mx.Unlock()
		return
	}
	snapshot := *record
	delete(t.records, mac)
	delete(t.joined, mac)
	t.mx.Unlock()

	t.onEvent(entities.EventClientLeft, snapshot)
}

// OnLease updates the existing record in place; a lease for a MAC we have
// not seen associate yet still creates the record, the association event
// may simply have been missed.
func (t *ClientTracker) OnLease(mac, ip, hostname string) {
	mac = normalizeMAC(mac)

	t.mx.Lock()
	record, exists := t.records[mac]
	if !exists {
		record = &entities.ClientRecord{MAC: mac}
		t.records[mac] = record
		t.joined[mac] = time.Now()
	}
	record.IP = ip
	if hostname != "" && hostname != "*" {
		record.Hostname = hostname
	}
	record.LastSeen = time.Now()
	snapshot := *record
	t.mx.Unlock()

	t.onEvent(entities.EventClientLease, snapshot)
}

// OnLeaseExpiry clears the IP binding but keeps the record while the
// station stays associated.
func (t *ClientTracker) OnLeaseExpiry(mac string) {
	mac = normalizeMAC(mac)

	t.mx.Lock()
	defer t.mx.Unlock()

	if record, exists := t.records[mac]; exists {
		record.IP = entities.ClientIPUnknown
		// the station starts a fresh wait for its renewed lease
		t.joined[mac] = time.Now()
	}
}

// Leaseless reports clients that associated at least window ago and
// still hold no DHCP lease. These are usually static-IP stations or a
// sign the DHCP path is broken.
func (t *ClientTracker) Leaseless(window time.Duration) []entities.ClientRecord {
	t.mx.Lock()
	defer t.mx.Unlock()

	now := time.Now()
	var records []entities.ClientRecord
	for mac, record := range t.records {
		if record.IP != entities.ClientIPUnknown {
			continue
		}
		if joinedAt, ok := t.joined[mac]; ok && now.Sub(joinedAt) >= window {
			records = append(records, *record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].MAC < records[j].MAC
	})

	return records
}

func (t *ClientTracker) UpdateSignal(mac string, signalDBM float64) {
	mac = normalizeMAC(mac)

	t.mx.Lock()
	defer t.mx.Unlock()

	if record, exists := t.records[mac]; exists {
		record.SignalDBM = signalDBM
		record.LastSeen = time.Now()
	}
}

func (t *ClientTracker) Snapshot() []entities.ClientRecord {
	t.mx.Lock()
	defer t.mx.Unlock()

	records := make([]entities.ClientRecord, 0, len(t.records))
	for _, record := range t.records {
		records = append(records, *record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].MAC < records[j].MAC
	})

	return records
}

func (t *ClientTracker) Reset() {
	t.mx.Lock()
	defer t.mx.Unlock()

	t.records = make(map[string]*entities.ClientRecord)
	t.joined = make(map[string]time.Time)
}

func normalizeMAC(mac string) string {
	return strings.ToLower(strings.TrimSpace(mac))
}

func lastMAC(line string) (mac string, ok bool) {
	matches := macPattern.FindAllString(line, -1)
	if len(matches) == 0 {
		return "", false
	}

	return matches[len(matches)-1], true
}

type dhcpLease struct {
	MAC      string
	IP       string
	Hostname string
}

// parseDHCPAck extracts the lease grant from a dnsmasq log line, e.g.
// "dnsmasq-dhcp[12]: DHCPACK(wlan0_ap0) 192.168.4.5 aa:bb:cc:dd:ee:ff phone".
func parseDHCPAck(line string) (lease dhcpLease, ok bool) {
	idx := strings.Index(line, "DHCPACK(")
	if idx < 0 {
		return lease, false
	}

	rest := line[idx:]
	closeIdx := strings.Index(rest, ")")
	if closeIdx < 0 {
		return lease, false
	}

	fields := strings.Fields(rest[closeIdx+1:])
	if len(fields) < 2 {
		return lease, false
	}

	lease.IP = fields[0]
	lease.MAC = normalizeMAC(fields[1])
	if len(fields) > 2 {
		lease.Hostname = fields[2]
	}

	if !macPattern.MatchString(lease.MAC) {
		return lease, false
	}

	return lease, true
}

// parseStationSignals extracts per-station signal readings from
// `iw dev <iface> station dump`.
func parseStationSignals(output []byte) map[string]float64 {
	signals := make(map[string]float64)

	var currentMAC string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if rest, found := strings.CutPrefix(line, "Station "); found {
			fields := strings.Fields(rest)
			if len(fields) > 0 {
				currentMAC = normalizeMAC(fields[0])
			}
			continue
		}

		if value, found := strings.CutPrefix(line, "signal:"); found && currentMAC != "" {
			fields := strings.Fields(value)
			if len(fields) > 0 {
				if signal, err := strconv.ParseFloat(fields[0], 64); err == nil {
					signals[currentMAC] = signal
				}
			}
		}
	}

	return signals
}
