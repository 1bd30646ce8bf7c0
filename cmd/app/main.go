package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lanreach/wifi-extender-agent/infrastructure"
	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/environment"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}

	if err = env.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.Agent.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Logger = log.Output(logWriter)
	if err = setLogLevel(env.Agent.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Str("agent version", serviceVersion).
		Str("interface", env.Agent.Interface).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(cancelCtx, kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(ctx context.Context, kernel *infrastructure.Kernel) (err error) {
	// pin the radio identity before anything touches the interface
	if err = kernel.ProbeRadio(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	// seed profiles from the configuration document, if present
	if err = loadProfileDocument(kernel); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	kernel.InjectWebsocketService().SetRoutes(getWebsocketRoutes(kernel))

	log.Info().Msg("initServices: connecting to MQ broker...")
	mqService := kernel.InjectMQService()
	mqService.RegisterHandlers(getMQRoutes(kernel))
	if err = mqService.Connect(); err != nil {
		return fmt.Errorf("initServices: connection to message broker failed")
	}
	if err = mqService.ActivateAllHandlers(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}
	log.Info().Msg("initServices: connected to MQ broker")

	log.Info().Msg("initServices: starting websocket endpoint...")
	go func() {
		if wsErr := kernel.InjectWebsocketService().Run(ctx); wsErr != nil {
			log.Error().Err(wsErr).Msg("initServices: websocket endpoint error")
		}
	}()

	log.Info().Msg("initServices: starting link monitor...")
	go kernel.InjectUpstreamMonitor().Start(ctx)

	log.Info().Msg("initServices: starting orchestrator...")
	go kernel.InjectOrchestratorService().Run(ctx)
	log.Info().Msg("initServices: orchestrator started")

	return nil
}

// loadProfileDocument reads the structured configuration document and
// persists its profiles, so the orchestrator resumes with them.
func loadProfileDocument(kernel *infrastructure.Kernel) (err error) {
	profileService := kernel.InjectProfileService()

	document, found, err := profileService.LoadDocument(env.Agent.ProfilePath)
	if err != nil {
		return fmt.Errorf("loadProfileDocument: %w", err)
	}
	if !found {
		log.Info().
			Str("path", env.Agent.ProfilePath).
			Msg("loadProfileDocument: no profile document, waiting for commands")

		return nil
	}

	if err = profileService.SaveUpstreamProfile(document.Upstream); err != nil {
		return fmt.Errorf("loadProfileDocument: %w", err)
	}

	if err = profileService.SaveAPProfile(document.AP); err != nil {
		return fmt.Errorf("loadProfileDocument: %w", err)
	}

	log.Info().
		Str("upstream ssid", document.Upstream.SSID).
		Str("ap ssid", document.AP.SSID).
		Msg("loadProfileDocument: profiles loaded")

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	if err := kernel.InjectMQService().Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close MQ error")
	}

	if err := kernel.DB.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close badger error")
	}
}

func setLogLevel(level string) (err error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(parsed)
	return nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // store retained log files for 30 days
		MaxBackups: 10,   // store maximum 10 retained log files
		Compress:   true, // compress files via gzip
	}, nil
}
