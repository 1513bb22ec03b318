package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/velat/layout-carousel-niri/pkg/carousel"
)

func addKeypressDuration(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keypress-duration [seconds]",
		Short: "Print or set the maximum gap between two presses that still counts as a double press",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor(cmd)
			if err != nil {
				return err
			}

			client, err := connect()
			if err != nil {
				return err
			}
			defer client.Close()

			store, err := openStore()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				return runPrintDuration(cmd.OutOrStdout(), client, store, unixNow(), log)
			}

			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse duration %q: %w", args[0], err)
			}

			return runSetDuration(client, store, carousel.Duration(seconds), unixNow(), log)
		},
	}

	topLevel.AddCommand(cmd)
}

func runPrintDuration(out io.Writer, switcher carousel.LayoutSwitcher, store carousel.Store, now float64, log *zap.SugaredLogger) error {
	state, err := loadOrCreate(switcher, store, now, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Current max keypress duration: %v\n", float64(state.MaxDuration))
	return nil
}

func runSetDuration(switcher carousel.LayoutSwitcher, store carousel.Store, duration carousel.Duration, now float64, log *zap.SugaredLogger) error {
	state, err := loadOrCreate(switcher, store, now, log)
	if err != nil {
		return err
	}

	if !duration.WithinRange() {
		return &carousel.OutOfRangeError{Value: duration}
	}

	state.MaxDuration = duration
	return store.Save(state)
}
