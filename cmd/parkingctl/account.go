package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/accounts/models"
)

func newAccountCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Provision profiles and top up balances",
	}

	cmd.AddCommand(
		newAccountCreateCmd(e),
		newAccountShowCmd(e),
		newAccountDepositCmd(e),
		newAccountSetBalanceCmd(e),
	)

	return cmd
}

func newAccountCreateCmd(e *env) *cobra.Command {
	var id, email, name string
	var admin bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile with a zero balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := &domain.Profile{
				ID:          id,
				Email:       strings.ToLower(strings.TrimSpace(email)),
				DisplayName: name,
				Role:        domain.RoleUser,
			}
			if profile.ID == "" {
				profile.ID = uuid.NewString()
			}
			if admin {
				profile.Role = domain.RoleAdmin
			}

			if err := e.container.Accounts.Create(cmd.Context(), profile); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile %s (%s, %s) ready\n", profile.ID, profile.Email, profile.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "profile id (generated when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAccountShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <email>",
		Short: "Show a profile and its balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.container.AccountsService.FindByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.ID, p.Email, p.Role, p.BalanceDisplay)
			return nil
		},
	}
}

func newAccountDepositCmd(e *env) *cobra.Command {
	var id, amount string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Credit a profile balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := parseAmount("amount", amount)
			if err != nil {
				return err
			}

			resp, err := e.container.AccountsService.Deposit(cmd.Context(), &models.DepositRequest{UserID: id, Amount: value})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deposited %s, balance %s\n", resp.Deposited, resp.BalanceDisplay)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "profile id")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to credit, e.g. 20.00")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newAccountSetBalanceCmd(e *env) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "set-balance <email> <amount>",
		Short: "Overwrite a profile balance (admin correction)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := parseBalance(args[1])
			if err != nil {
				return err
			}

			p, err := e.container.AccountsService.SetBalance(cmd.Context(), &models.SetBalanceRequest{
				UserID:  actor,
				Email:   args[0],
				Balance: balance,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s balance set to %s\n", p.Email, p.BalanceDisplay)
			return nil
		},
	}

	cmd.Flags().StringVar(&actor, "as", "", "admin profile id performing the change")
	_ = cmd.MarkFlagRequired("as")

	return cmd
}
