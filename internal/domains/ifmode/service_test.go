package ifmode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lanreach/wifi-extender-agent/internal/domains/ifmode"
	"github.com/lanreach/wifi-extender-agent/internal/domains/ifmode/ifmode_mocks"
	"github.com/lanreach/wifi-extender-agent/internal/domains/shell/commands"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/errs"
)

type serviceFields struct {
	shellService *ifmode_mocks.MockIShellService
	radioService *ifmode_mocks.MockIRadioService
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		shellService: ifmode_mocks.NewMockIShellService(t),
		radioService: ifmode_mocks.NewMockIRadioService(t),
	}
}

var errLinkUpFailed = errors.New("link up failed")

func concurrentIdentity() entities.RadioIdentity {
	return entities.RadioIdentity{
		InterfaceName:      "wlan0",
		PhyName:            "phy0",
		SupportedModes:     []string{"managed", "AP"},
		SupportsConcurrent: true,
	}
}

func Test_RequestMode(t *testing.T) {
	testTable := []struct {
		name          string
		target        entities.InterfaceMode
		prepare       func(f *serviceFields)
		expectedError error
	}{
		{
			name:   "already in target mode",
			target: entities.InterfaceModeStation,
			prepare: func(f *serviceFields) {
				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeStation, nil).
					Times(1)
			},
		},
		{
			name:   "down to station",
			target: entities.InterfaceModeStation,
			prepare: func(f *serviceFields) {
				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeDown, nil).
					Once()

				f.shellService.EXPECT().
					Exec(commands.NewLinkSetDownCmd("wlan0")).
					Return(nil).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewSetIfaceTypeCmd("wlan0", "managed")).
					Return(nil).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewLinkSetUpCmd("wlan0")).
					Return(nil).
					Times(1)

				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeStation, nil).
					Once()
			},
		},
		{
			name:   "station to down",
			target: entities.InterfaceModeDown,
			prepare: func(f *serviceFields) {
				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeStation, nil).
					Once()

				f.shellService.EXPECT().
					Exec(commands.NewLinkSetDownCmd("wlan0")).
					Return(nil).
					Times(1)

				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeDown, nil).
					Once()
			},
		},
		{
			name:          "apply failure restores prior mode",
			target:        entities.InterfaceModeAccessPoint,
			expectedError: errs.ErrModeTransitionFailed,
			prepare: func(f *serviceFields) {
				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeStation, nil).
					Once()

				// both the failed transition and the rollback bring the link down first
				f.shellService.EXPECT().
					Exec(commands.NewLinkSetDownCmd("wlan0")).
					Return(nil).
					Times(2)

				f.shellService.EXPECT().
					Exec(commands.NewSetIfaceTypeCmd("wlan0", "__ap")).
					Return(errors.New("nl80211 busy")).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewSetIfaceTypeCmd("wlan0", "managed")).
					Return(nil).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewLinkSetUpCmd("wlan0")).
					Return(nil).
					Times(1)

				f.radioService.EXPECT().
					CurrentMode("wlan0").
					Return(entities.InterfaceModeStation, nil).
					Once()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := ifmode.NewService(f.shellService, f.radioService, concurrentIdentity())

			err := service.RequestMode(context.Background(), testCase.target)
			if testCase.expectedError != nil {
				require.ErrorIs(t, err, testCase.expectedError)
				return
			}

			require.NoError(t, err)
		})
	}
}

func Test_RequestMode_RefusesConcurrent(t *testing.T) {
	f := newServiceFields(t)

	entered := make(chan struct{})
	release := make(chan struct{})

	f.radioService.EXPECT().
		CurrentMode("wlan0").
		Run(func(interfaceName string) {
			close(entered)
			<-release
		}).
		Return(entities.InterfaceModeStation, nil).
		Once()

	service := ifmode.NewService(f.shellService, f.radioService, concurrentIdentity())

	done := make(chan error, 1)
	go func() {
		done <- service.RequestMode(context.Background(), entities.InterfaceModeStation)
	}()

	<-entered

	// a transition is in flight, so the second request is refused outright
	require.ErrorIs(t,
		service.RequestMode(context.Background(), entities.InterfaceModeAccessPoint),
		errs.ErrModeTransitionInFlight)

	close(release)
	require.NoError(t, <-done)
}

func Test_CreateVirtualAP(t *testing.T) {
	testTable := []struct {
		name          string
		identity      entities.RadioIdentity
		prepare       func(f *serviceFields)
		expectedName  string
		expectedError error
	}{
		{
			name:         "creates wlan0_ap0",
			identity:     concurrentIdentity(),
			expectedName: "wlan0_ap0",
			prepare: func(f *serviceFields) {
				f.shellService.EXPECT().
					Exec(commands.NewAddVirtualAPCmd("wlan0", "wlan0_ap0")).
					Return(nil).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewLinkSetUpCmd("wlan0_ap0")).
					Return(nil).
					Times(1)
			},
		},
		{
			name: "unsupported hardware",
			identity: entities.RadioIdentity{
				InterfaceName:      "wlan0",
				SupportedModes:     []string{"managed"},
				SupportsConcurrent: false,
			},
			expectedError: errs.ErrUnsupportedHardware,
		},
		{
			name:          "link up failure removes half-created interface",
			identity:      concurrentIdentity(),
			expectedError: errLinkUpFailed,
			prepare: func(f *serviceFields) {
				f.shellService.EXPECT().
					Exec(commands.NewAddVirtualAPCmd("wlan0", "wlan0_ap0")).
					Return(nil).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewLinkSetUpCmd("wlan0_ap0")).
					Return(errLinkUpFailed).
					Times(1)

				f.shellService.EXPECT().
					Exec(commands.NewDelIfaceCmd("wlan0_ap0")).
					Return(nil).
					Times(1)
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			f := newServiceFields(t)
			if testCase.prepare != nil {
				testCase.prepare(f)
			}

			service := ifmode.NewService(f.shellService, f.radioService, testCase.identity)

			name, err := service.CreateVirtualAP(context.Background())
			if testCase.expectedError != nil {
				require.ErrorIs(t, err, testCase.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.expectedName, name)
		})
	}
}

func Test_CreateVirtualAP_Idempotent(t *testing.T) {
	f := newServiceFields(t)

	f.shellService.EXPECT().
		Exec(commands.NewAddVirtualAPCmd("wlan0", "wlan0_ap0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewLinkSetUpCmd("wlan0_ap0")).
		Return(nil).
		Times(1)

	service := ifmode.NewService(f.shellService, f.radioService, concurrentIdentity())

	name, err := service.CreateVirtualAP(context.Background())
	require.NoError(t, err)
	require.Equal(t, "wlan0_ap0", name)
	require.Equal(t, "wlan0_ap0", service.VirtualAPInterface())

	// second call must not touch the shell again
	name, err = service.CreateVirtualAP(context.Background())
	require.NoError(t, err)
	require.Equal(t, "wlan0_ap0", name)
}

func Test_DeleteVirtualAP(t *testing.T) {
	f := newServiceFields(t)

	f.shellService.EXPECT().
		Exec(commands.NewAddVirtualAPCmd("wlan0", "wlan0_ap0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewLinkSetUpCmd("wlan0_ap0")).
		Return(nil).
		Times(1)

	f.shellService.EXPECT().
		Exec(commands.NewDelIfaceCmd("wlan0_ap0")).
		Return(nil).
		Times(1)

	service := ifmode.NewService(f.shellService, f.radioService, concurrentIdentity())

	// deleting before creation is a no-op
	require.NoError(t, service.DeleteVirtualAP())

	_, err := service.CreateVirtualAP(context.Background())
	require.NoError(t, err)

	require.NoError(t, service.DeleteVirtualAP())
	require.Empty(t, service.VirtualAPInterface())
}
