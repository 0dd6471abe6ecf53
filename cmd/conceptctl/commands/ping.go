/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ping.go
Description: Ping command for conceptctl. Attaches to a running RAM Concept
API server and round-trips a PING command to verify the connection.
*/

package commands

import (
	"fmt"
	"time"

	"github.com/kleascm/concept-client/pkg/concept"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunPing attaches to a running server and verifies it responds
func RunPing(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	port := viper.GetInt("port")
	if port == 0 {
		return fmt.Errorf("no port configured (use --port or CONCEPTCTL_PORT)")
	}

	fmt.Printf("🔍 Pinging server on port %d...\n", port)

	start := time.Now()
	client, err := concept.Attach(port)
	if err != nil {
		return fmt.Errorf("failed to attach to server: %w", err)
	}

	reply, err := client.Ping(10 * time.Second)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	fmt.Printf("✅ %s in %s\n", reply, time.Since(start).Round(time.Millisecond))
	return nil
}
