// Command token mints a bearer token for local development and smoke tests.
//
//	JWT_SECRET=... go run ./cmd/token --user alice
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/pkg/logging"
)

type tokenConfig struct {
	JWTSecret string `env:"JWT_SECRET,required"`
}

var (
	userID string
	ttl    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a splitledger bearer token",
	Long: `token signs a JWT with JWT_SECRET whose user_id claim is the given user.
The server accepts it in an "Authorization: Bearer <token>" header.

Example:
  token --user alice --ttl 1h`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup("warn")
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := env.ParseAs[tokenConfig]()
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		token, err := auth.NewJWTManager(cfg.JWTSecret, ttl).Generate(userID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&userID, "user", "", "user id to put in the token")
	rootCmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = rootCmd.MarkFlagRequired("user")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Failed to mint token", "error", err)
		os.Exit(1)
	}
}
