package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codeberg.org/velat/layout-carousel-niri/pkg/carousel"
	jsonstore "codeberg.org/velat/layout-carousel-niri/pkg/carouselstore/json"
	"codeberg.org/velat/layout-carousel-niri/pkg/niri"
)

// New builds the layout-carousel command tree.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "layout-carousel-niri",
		Short:         "Layout carousel for the niri compositor: a single press toggles the two last used keyboard layouts, rapid presses cycle through the rest.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addSwitch(cmd)
	addKeypressDuration(cmd)
	addReload(cmd)
	addCompletion(cmd)
	return cmd
}

func loggerFor(cmd *cobra.Command) (*zap.SugaredLogger, error) {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return nil, fmt.Errorf("read debug flag: %w", err)
	}

	return newLogger(debug)
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if !debug {
		// Keybinding-driven runs should stay quiet.
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}

func unixNow() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// loadOrCreate falls back to fresh default state when the saved record is
// missing or unreadable, sizing the carousel from the live layout list.
func loadOrCreate(switcher carousel.LayoutSwitcher, store carousel.Store, now float64, log *zap.SugaredLogger) (*carousel.State, error) {
	state, err := store.Load()
	if err == nil {
		return state, nil
	}
	log.Debugf("no usable state (%v), creating defaults", err)

	return createDefault(switcher, now)
}

func createDefault(switcher carousel.LayoutSwitcher, now float64) (*carousel.State, error) {
	names, err := switcher.LayoutNames()
	if err != nil {
		return nil, fmt.Errorf("query keyboard layouts: %w", err)
	}

	return carousel.NewDefault(len(names), now), nil
}

func openStore() (carousel.Store, error) {
	store, err := jsonstore.NewDefaultStore()
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}

	return store, nil
}

func connect() (*niri.Client, error) {
	client, err := niri.Connect()
	if err != nil {
		return nil, fmt.Errorf("connect to niri: %w", err)
	}

	return client, nil
}
