package infrastructure

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/domains/accesspoint"
	"github.com/lanreach/wifi-extender-agent/internal/domains/debug"
	"github.com/lanreach/wifi-extender-agent/internal/domains/orchestrator"
	"github.com/lanreach/wifi-extender-agent/internal/domains/upstream"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/environment"
)

type IInjector interface {
	InjectOrchestratorHandler() *orchestrator.Handler
	InjectUpstreamHandler() *upstream.Handler
	InjectAccessPointHandler() *accesspoint.Handler

	// MQ handlers.

	InjectOrchestratorMQHandler() *orchestrator.MQHandler
	InjectUpstreamMQHandler() *upstream.MQHandler
	InjectAccessPointMQHandler() *accesspoint.MQHandler
	InjectDebugMQHandler() *debug.MQHandler
}

type Kernel struct {
	env environment.Environment

	DB       *badger.DB
	Identity entities.RadioIdentity
}

func Inject(env environment.Environment) (k *Kernel, err error) {
	k = &Kernel{
		env: env,
	}

	options := badger.DefaultOptions(constants.AgentStatePath).
		WithLogger(newBadgerLogger()).
		WithMemTableSize(64 << 17) // ~8MB

	if k.DB, err = badger.Open(options); err != nil {
		return k, fmt.Errorf("Inject: %w", err)
	}

	return k, nil
}

// ProbeRadio inspects the configured interface once and pins its
// identity for the process lifetime. Must run before the mode or
// orchestrator services are injected.
func (k *Kernel) ProbeRadio() (err error) {
	if k.Identity, err = k.InjectRadioService().Probe(k.env.Interface); err != nil {
		return fmt.Errorf("ProbeRadio: %w", err)
	}

	log.Info().
		Str("interface", k.Identity.InterfaceName).
		Str("phy", k.Identity.PhyName).
		Str("driver", k.Identity.Driver).
		Bool("concurrent", k.Identity.SupportsConcurrent).
		Msg("ProbeRadio: radio probed")

	return nil
}

func (k *Kernel) InjectOrchestratorHandler() *orchestrator.Handler {
	return orchestrator.NewHandler(
		k.InjectOrchestratorService(),
	)
}

func (k *Kernel) InjectUpstreamHandler() *upstream.Handler {
	return upstream.NewHandler(
		k.InjectUpstreamService(),
		k.InjectOrchestratorService(),
	)
}

func (k *Kernel) InjectAccessPointHandler() *accesspoint.Handler {
	return accesspoint.NewHandler(
		k.InjectAccessPointService(),
		k.InjectOrchestratorService(),
	)
}

// MQ handlers.

func (k *Kernel) InjectOrchestratorMQHandler() *orchestrator.MQHandler {
	return orchestrator.NewMQHandler(
		k.InjectOrchestratorService(),
	)
}

func (k *Kernel) InjectUpstreamMQHandler() *upstream.MQHandler {
	return upstream.NewMQHandler(
		k.InjectUpstreamService(),
		k.InjectOrchestratorService(),
	)
}

func (k *Kernel) InjectAccessPointMQHandler() *accesspoint.MQHandler {
	return accesspoint.NewMQHandler(
		k.InjectAccessPointService(),
		k.InjectOrchestratorService(),
	)
}

func (k *Kernel) InjectDebugMQHandler() *debug.MQHandler {
	return debug.NewMQHandler()
}

// badgerLogger routes badger internals into the application log at
// debug level.
type badgerLogger struct{}

func newBadgerLogger() badgerLogger {
	return badgerLogger{}
}

func (badgerLogger) Errorf(format string, args ...any) {
	log.Error().Msgf("badger: "+format, args...)
}

func (badgerLogger) Warningf(format string, args ...any) {
	log.Warn().Msgf("badger: "+format, args...)
}

func (badgerLogger) Infof(format string, args ...any) {
	log.Debug().Msgf("badger: "+format, args...)
}

func (badgerLogger) Debugf(format string, args ...any) {
	log.Debug().Msgf("badger: "+format, args...)
}
