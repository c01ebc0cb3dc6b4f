// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/lengthconv/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Open the interactive conversion screen",
	Long: `Session shows the conversion screen and reads one event per line:

  <text>          new content of the number field
  :from <unit>    select the source unit
  :to <unit>      select the target unit
  :reset          restore m, cm, and an empty field
  :units          list the units
  :state          print the screen state as YAML
  :quit           leave

A rejected edit keeps the previous value and marks the underline with "!".`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	delay := cfg.Presentation.SplashDelay
	if noSplash, _ := cmd.Flags().GetBool("no-splash"); noSplash {
		delay = 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen := session.New(engine, cmd.OutOrStdout(),
		session.WithLogger(log.Logger),
		session.WithSplashDelay(delay),
	)
	log.Debug().Dur("splash_delay", delay).Msg("session started")

	err = screen.Run(ctx, cmd.InOrStdin())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func init() {
	sessionCmd.Flags().Bool("no-splash", false, "skip the splash banner")

	rootCmd.AddCommand(sessionCmd)
}
