// Package client provides test commands for the reward gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the reward service",
	Long:  `Client commands allow you to test the reward service by making real gRPC requests.`,
}

func init() {
	// Add persistent flags for all client commands
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Avatar commands
	ClientCmd.AddCommand(createAvatarCmd)
	ClientCmd.AddCommand(getAvatarCmd)

	// Delivery commands
	ClientCmd.AddCommand(deliverCmd)
	ClientCmd.AddCommand(claimVictoryCmd)
	ClientCmd.AddCommand(listNotificationsCmd)
}

// createRewardClient creates a reward service client
func createRewardClient() (v1alpha1.RewardServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewRewardServiceClient(conn), cleanup, nil
}

// request builds a request struct from a message
func request(msg any) (*structpb.Struct, error) {
	req, err := v1alpha1.Encode(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	return req, nil
}

// decode reads a response struct into a message
func decode(resp *structpb.Struct, msg any) error {
	if err := v1alpha1.Decode(resp, msg); err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	return nil
}

func printJSON(v any) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%+v\n", v)
		return
	}
	fmt.Println(string(raw))
}

func printNotification(n *v1alpha1.NotificationMessage) {
	fmt.Printf("\n[%d] %s (item %d)\n", n.SequenceIndex, n.Kind, n.ItemID)
	fmt.Println(n.Text)
	for _, cue := range n.Cues {
		fmt.Printf("  * %s: %s\n", cue.Kind, cue.Text)
	}
}
