package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/satriahrh/alihbahasa/internal/api"
	"github.com/satriahrh/alihbahasa/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token <client-id>",
	Short: "Mint an access token for the translation routes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if !cfg.AuthEnabled() {
			return errors.New("auth.jwt_secret is not set; the server accepts requests without tokens")
		}

		issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			return err
		}

		token, expiresAt, err := issuer.GenerateClientToken(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(api.TokenResponse{
			Token:     token,
			ExpiresAt: expiresAt,
			ClientID:  args[0],
		})
	},
}
