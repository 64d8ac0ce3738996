package main

import (
	"github.com/SscSPs/currency_exchange_app/cmd/exchangectl/ui"
	"github.com/SscSPs/currency_exchange_app/internal/utils/calculator"
	"github.com/SscSPs/currency_exchange_app/pkg/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func runCalc(cmd *cobra.Command, args []string) error {
	feed := client.NewCatalogFeed(newClient(), logger)
	m := ui.NewCalculatorModel(cmd.Context(), feed, calculator.DefaultLeftCurrency, calculator.DefaultRightCurrency)
	_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
	return err
}
