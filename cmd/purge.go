package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satriahrh/alihbahasa/internal/janitor"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove stale files from the upload directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		sweeper := janitor.NewUploadJanitor(cfg.Upload.Dir, cfg.Upload.MaxAge, cfg.Upload.PurgeInterval, logger)
		removed, err := sweeper.Purge()
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d file(s) older than %s from %s\n", removed, cfg.Upload.MaxAge, cfg.Upload.Dir)
		return err
	},
}
