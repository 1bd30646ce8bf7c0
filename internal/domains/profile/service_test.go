package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/profile"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

func newTestService(t *testing.T) *profile.Service {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return profile.NewService(db)
}

func Test_UpstreamProfileRoundTrip(t *testing.T) {
	service := newTestService(t)

	_, err := service.LoadUpstreamProfile()
	require.ErrorIs(t, err, errs.ErrProfileNotFound)

	saved := entities.UpstreamProfile{
		SSID:        "HomeNet",
		Security:    entities.SecurityWPA2PSK,
		PSK:         "hunter2hunter2",
		LastChannel: 6,
	}
	require.NoError(t, service.SaveUpstreamProfile(saved))

	loaded, err := service.LoadUpstreamProfile()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func Test_SaveUpstreamProfile_Invalid(t *testing.T) {
	service := newTestService(t)

	testTable := []struct {
		name    string
		profile entities.UpstreamProfile
	}{
		{
			name: "missing ssid",
			profile: entities.UpstreamProfile{
				Security: entities.SecurityWPA2PSK,
				PSK:      "hunter2hunter2",
			},
		},
		{
			name: "psk too short for wpa2",
			profile: entities.UpstreamProfile{
				SSID:     "HomeNet",
				Security: entities.SecurityWPA2PSK,
				PSK:      "short",
			},
		},
		{
			name: "unknown security type",
			profile: entities.UpstreamProfile{
				SSID:     "HomeNet",
				Security: "wep",
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			require.ErrorIs(t, service.SaveUpstreamProfile(testCase.profile), errs.ErrInvalidProfile)
		})
	}
}

func Test_APProfileRoundTrip(t *testing.T) {
	service := newTestService(t)

	saved := entities.APProfile{
		SSID:         "ExtenderNet",
		Security:     entities.SecurityWPA2PSK,
		PSK:          "hunter2hunter2",
		Channel:      6,
		GatewayCIDR:  "192.168.4.1/24",
		DHCPRangeLo:  "192.168.4.10",
		DHCPRangeHi:  "192.168.4.200",
		DHCPLeaseTTL: "12h",
	}
	require.NoError(t, service.SaveAPProfile(saved))

	loaded, err := service.LoadAPProfile()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func Test_SaveAPProfile_AddressingDefaults(t *testing.T) {
	service := newTestService(t)

	require.NoError(t, service.SaveAPProfile(entities.APProfile{
		SSID:     "ExtenderNet",
		Security: entities.SecurityWPA2PSK,
		PSK:      "hunter2hunter2",
		Channel:  6,
	}))

	loaded, err := service.LoadAPProfile()
	require.NoError(t, err)
	require.Equal(t, constants.DefaultAPAddress, loaded.GatewayCIDR)
	require.Equal(t, constants.DefaultDHCPRangeLo, loaded.DHCPRangeLo)
	require.Equal(t, constants.DefaultDHCPRangeHi, loaded.DHCPRangeHi)
	require.Equal(t, constants.DefaultLeaseTime, loaded.DHCPLeaseTTL)
}

func Test_Goal(t *testing.T) {
	service := newTestService(t)

	// never-saved goal defaults to stopped
	goal, err := service.LoadGoal()
	require.NoError(t, err)
	require.Equal(t, entities.GoalStopped, goal)

	require.NoError(t, service.SaveGoal(entities.GoalExtending))

	goal, err = service.LoadGoal()
	require.NoError(t, err)
	require.Equal(t, entities.GoalExtending, goal)
}

const profileDocumentSample = `upstream:
  ssid: HomeNet
  security: wpa2-psk
  psk: hunter2hunter2
  lastChannel: 6
ap:
  ssid: ExtenderNet
  security: wpa2-psk
  psk: hunter2hunter2
  channel: 6
  gatewayCidr: 192.168.4.1/24
  dhcpRangeLo: 192.168.4.10
  dhcpRangeHi: 192.168.4.200
  dhcpLeaseTtl: 12h
`

func Test_LoadDocument(t *testing.T) {
	service := newTestService(t)

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profileDocumentSample), 0o644))

	document, found, err := service.LoadDocument(path)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "HomeNet", document.Upstream.SSID)
	require.Equal(t, entities.SecurityWPA2PSK, document.Upstream.Security)
	require.Equal(t, "ExtenderNet", document.AP.SSID)
	require.Equal(t, "192.168.4.1/24", document.AP.GatewayCIDR)
}

func Test_LoadDocument_Missing(t *testing.T) {
	service := newTestService(t)

	_, found, err := service.LoadDocument(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.False(t, found)
}

func Test_LoadDocument_Invalid(t *testing.T) {
	service := newTestService(t)

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upstream:\n  ssid: HomeNet\n"), 0o644))

	_, _, err := service.LoadDocument(path)
	require.ErrorIs(t, err, errs.ErrInvalidProfile)
}
