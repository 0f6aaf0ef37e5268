package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ParkingService/internal/service/pricing/models"
)

func newPricingCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show or change the parking rate",
	}

	cmd.AddCommand(
		newPricingGetCmd(e),
		newPricingSetCmd(e),
	)

	return cmd
}

func newPricingGetCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current rate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := e.container.PricingService.Get(cmd.Context())
			if err != nil {
				return err
			}

			printPricing(cmd.OutOrStdout(), resp)
			return nil
		},
	}
}

func newPricingSetCmd(e *env) *cobra.Command {
	var actor, rate, minimum, currency string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the hourly rate, minimum charge and currency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := &models.UpdatePricingRequest{UserID: actor}

			var err error
			if req.HourlyRate, err = parseAmount("rate", rate); err != nil {
				return err
			}
			if req.MinimumCharge, err = parseAmount("minimum", minimum); err != nil {
				return err
			}
			if cmd.Flags().Changed("currency") {
				req.Currency = &currency
			}

			resp, err := e.container.PricingService.Update(cmd.Context(), req)
			if err != nil {
				return err
			}

			printPricing(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "as", "", "admin profile id performing the change")
	cmd.Flags().StringVar(&rate, "rate", "", "hourly rate, e.g. 5.00")
	cmd.Flags().StringVar(&minimum, "minimum", "", "minimum charge, e.g. 2.00")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 code (keeps the current one when omitted)")
	_ = cmd.MarkFlagRequired("as")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("minimum")

	return cmd
}

func printPricing(w io.Writer, p *models.PricingResponse) {
	_, _ = fmt.Fprintf(w, "rate: %s/h\nminimum: %s\ncurrency: %s\nupdated: %s by %s\n",
		p.HourlyRateDisplay, p.MinimumChargeDisplay, p.Currency, p.UpdatedAt.Format("2006-01-02 15:04"), p.UpdatedBy)
}

func parseAmount(flag, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: %q is not a decimal amount", flag, value)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("--%s: amount must be positive", flag)
	}
	return amount, nil
}

// parseBalance в отличие от parseAmount допускает ноль
func parseBalance(value string) (decimal.Decimal, error) {
	balance, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance: %q is not a decimal amount", value)
	}
	if balance.IsNegative() {
		return decimal.Zero, fmt.Errorf("balance: must not be negative")
	}
	return balance, nil
}
