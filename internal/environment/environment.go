package environment

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
)

type Environment struct {
	Agent
}

type Agent struct {
	Interface   string
	ProfilePath string
	NATSAddr    string
	WSListen    string
	LogfilePath string
	LogLevel    string
}

func New() (e Environment, err error) {
	v := viper.New()
	v.AutomaticEnv()

	// agent settings
	v.SetEnvPrefix("AGENT")
	e.Agent.Interface = v.GetString("INTERFACE")
	e.Agent.ProfilePath = v.GetString("PROFILE_PATH")
	if lo.IsEmpty(e.Agent.ProfilePath) {
		e.Agent.ProfilePath = constants.ProfileConfigPath
	}
	e.Agent.NATSAddr = v.GetString("NATS_ADDR")
	e.Agent.WSListen = v.GetString("WS_LISTEN")
	if lo.IsEmpty(e.Agent.WSListen) {
		e.Agent.WSListen = "127.0.0.1:8181"
	}
	e.Agent.LogfilePath = v.GetString("LOG_FILE")
	if lo.IsEmpty(e.Agent.LogfilePath) {
		e.Agent.LogfilePath = constants.DefaultLogfilePath
	}
	e.Agent.LogLevel = v.GetString("LOG_LEVEL")
	if lo.IsEmpty(e.Agent.LogLevel) {
		e.Agent.LogLevel = "info"
	}

	return e, nil
}

func (e Agent) IsDebug() bool {
	return e.LogLevel == "debug"
}

func (e Agent) Validate() error {
	if lo.IsEmpty(e.Interface) {
		return fmt.Errorf("Validate: AGENT_INTERFACE env is empty")
	}

	return nil
}
