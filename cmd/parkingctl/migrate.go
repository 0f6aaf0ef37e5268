package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(e *env) *cobra.Command {
	var slots int

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema, seed initial slots and default pricing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("slots") {
				slots = e.cfg.Parking.InitialSlots
			}

			seeded, err := e.container.Bootstrap(cmd.Context(), slots)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "schema applied, %d slot(s) seeded\n", seeded)
			return nil
		},
	}

	cmd.Flags().IntVar(&slots, "slots", 0, "number of slots to seed into an empty lot (default from config)")

	return cmd
}
