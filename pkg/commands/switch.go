package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/velat/layout-carousel-niri/pkg/carousel"
)

func addSwitch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Toggle the two last used layouts, or cycle further on rapid presses",
		Args:  cobra.NoArgs,
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

			return runSwitch(client, store, unixNow(), log)
		},
	}

	topLevel.AddCommand(cmd)
}

// runSwitch advances the carousel one press and asks niri for the result.
func runSwitch(switcher carousel.LayoutSwitcher, store carousel.Store, now float64, log *zap.SugaredLogger) error {
	state, err := loadOrCreate(switcher, store, now, log)
	if err != nil {
		return err
	}

	// A single configured layout leaves nothing to rotate.
	if len(state.Layouts) < 2 {
		log.Debugf("%d layout(s) configured, nothing to do", len(state.Layouts))
		return nil
	}

	state.AdvanceTiming(now)
	state.Rotate()

	if err := switcher.SwitchLayout(state.Active()); err != nil {
		return fmt.Errorf("switch layout: %w", err)
	}
	log.Debugf("switched to layout %d (streak %d)", state.Active(), state.Counter)

	return store.Save(state)
}
