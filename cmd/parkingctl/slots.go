package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

func newSlotsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Inspect and manage parking slots",
	}

	cmd.AddCommand(
		newSlotsListCmd(e),
		newSlotsAddCmd(e),
		newSlotsResetCmd(e),
	)

	return cmd
}

func newSlotsListCmd(e *env) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List slots in slot number order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				resp *models.SlotListResponse
				err  error
			)
			if available {
				resp, err = e.container.SlotsService.ListAvailable(cmd.Context())
			} else {
				resp, err = e.container.SlotsService.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			return printSlots(cmd.OutOrStdout(), resp.Slots)
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "only free slots")

	return cmd
}

func newSlotsAddCmd(e *env) *cobra.Command {
	var (
		actor  string
		number int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a slot with the given number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			slot, err := e.container.SlotsService.Add(cmd.Context(), &models.AddSlotRequest{
				UserID:     actor,
				SlotNumber: number,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "slot %d added (id=%s)\n", slot.SlotNumber, slot.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "as", "", "admin profile id performing the change")
	cmd.Flags().IntVar(&number, "number", 0, "slot number")
	_ = cmd.MarkFlagRequired("as")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}

func newSlotsResetCmd(e *env) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Release every occupied slot without charging",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := e.container.SlotsService.Reset(cmd.Context(), actor)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d slot(s) released\n", resp.Released)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "as", "", "admin profile id performing the reset")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}

func printSlots(w io.Writer, slots []models.SlotResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NUMBER\tSTATE\tPLATE\tTYPE\tENTRY\tID")
	for _, s := range slots {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.SlotNumber, s.State, deref(s.VehiclePlate), deref(s.VehicleType), deref(s.EntryTime), s.ID)
	}
	return tw.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
