package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satriahrh/alihbahasa/usecase"
)

var targetLanguage string

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text once with the configured translator",
	Example: `  alihbahasa translate --to fr "Selamat pagi"
  ALIHBAHASA_TRANSLATE_PROVIDER=gemini alihbahasa translate --to hi "Good morning"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&targetLanguage, "to", "t", usecase.ImageTargetLanguage, "target language code")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("text is required")
	}

	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	clients, err := newTranslatorOnly(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize translator: %w", err)
	}
	defer clients.Close(logger)

	translation := usecase.NewTranslationService(clients.translator, cfg.Timeouts.Translation, logger)
	translated, err := translation.Translate(ctx, text, targetLanguage)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), translated)
	return nil
}
