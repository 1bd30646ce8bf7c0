package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanreach/wifi-extender-agent/internal/constants"
	"github.com/lanreach/wifi-extender-agent/internal/entities"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the full status snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := request(constants.MQExtenderGetStatus, nil)
		if err != nil {
			return err
		}

		var pretty json.RawMessage = resp.Data
		indented, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(indented))
		return nil
	},
}

var goalCmd = &cobra.Command{
	Use:       "goal {extending|stopped}",
	Short:     "Set the extender goal",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"extending", "stopped"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := request(constants.MQExtenderSetGoal, struct {
			Goal string `json:"goal"`
		}{Goal: args[0]}); err != nil {
			return err
		}

		fmt.Printf("goal set to %s\n", args[0])
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for upstream networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := request(constants.MQUpstreamScan, nil)
		if err != nil {
			return err
		}

		var data struct {
			Table string `json:"table"`
		}
		if err = json.Unmarshal(resp.Data, &data); err != nil {
			return err
		}

		fmt.Println(data.Table)
		return nil
	},
}

var (
	connectSecurity string
	connectPSK      string
	connectChannel  int
)

var connectCmd = &cobra.Command{
	Use:   "connect <ssid>",
	Short: "Store an upstream profile and connect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := entities.UpstreamProfile{
			SSID:        args[0],
			Security:    entities.SecurityType(connectSecurity),
			PSK:         connectPSK,
			LastChannel: connectChannel,
		}

		if _, err := request(constants.MQUpstreamConnect, struct {
			Profile entities.UpstreamProfile `json:"profile"`
		}{Profile: profile}); err != nil {
			return err
		}

		fmt.Printf("upstream profile stored for %s\n", profile.SSID)
		return nil
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Drop the current upstream association",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := request(constants.MQUpstreamDisconnect, nil); err != nil {
			return err
		}

		fmt.Println("disconnected")
		return nil
	},
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients associated with the access point",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := request(constants.MQAccessPointListClients, nil)
		if err != nil {
			return err
		}

		var data struct {
			Table string `json:"table"`
		}
		if err = json.Unmarshal(resp.Data, &data); err != nil {
			return err
		}

		fmt.Println(data.Table)
		return nil
	},
}

var retryCmd = &cobra.Command{
	Use:   "retry",
	Short: "Retry out of a degraded condition",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := request(constants.MQExtenderManualRetry, nil); err != nil {
			return err
		}

		fmt.Println("retry requested")
		return nil
	},
}

func init() {
	connectCmd.Flags().StringVar(&connectSecurity, "security", "wpa2-psk", "security type (open, wpa-psk, wpa2-psk)")
	connectCmd.Flags().StringVar(&connectPSK, "psk", "", "pre-shared key")
	connectCmd.Flags().IntVar(&connectChannel, "channel", 0, "last known channel (scan hint)")
}
