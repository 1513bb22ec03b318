package commands

import (
	"github.com/spf13/cobra"

	"codeberg.org/velat/layout-carousel-niri/pkg/carousel"
)

func addReload(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Discard saved state and rebuild it from the current niri layout list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connect()
			if err != nil {
				return err
			}
			defer client.Close()

			store, err := openStore()
			if err != nil {
				return err
			}

			return runReload(client, store, unixNow())
		},
	}

	topLevel.AddCommand(cmd)
}

func runReload(switcher carousel.LayoutSwitcher, store carousel.Store, now float64) error {
	state, err := createDefault(switcher, now)
	if err != nil {
		return err
	}

	return store.Save(state)
}
