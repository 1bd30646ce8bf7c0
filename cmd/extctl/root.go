package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	natsURL        string
	requestTimeout time.Duration
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "extctl",
	Short: "Operator CLI for the wifi extender agent",
	Long: `extctl drives the local wifi extender daemon over NATS:
  - set the goal (extending / stopped)
  - inspect the full status snapshot
  - scan for upstream networks and connect
  - list associated clients
  - retry out of a degraded condition`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&natsURL, "nats", nats.DefaultURL, "NATS server URL")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 30*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(connectCmd)
	rootCmd.AddCommand(disconnectCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(retryCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

type agentResponse struct {
	Code  int             `json:"code"`
	Error string          `json:"error,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// request performs one NATS request against the local daemon.
func request(subject string, body any) (resp agentResponse, err error) {
	conn, err := nats.Connect(natsURL)
	if err != nil {
		return resp, fmt.Errorf("request: %w", err)
	}
	defer conn.Close()

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return resp, fmt.Errorf("request: %w", err)
		}
	}

	log.Debug().
		Str("subject", subject).
		Msg("request: sending")

	msg, err := conn.Request(subject, payload, requestTimeout)
	if err != nil {
		return resp, fmt.Errorf("request: %w", err)
	}

	if err = json.Unmarshal(msg.Data, &resp); err != nil {
		return resp, fmt.Errorf("request: %w", err)
	}

	if resp.Error != "" {
		return resp, fmt.Errorf("request: agent error: %s", resp.Error)
	}

	return resp, nil
}
