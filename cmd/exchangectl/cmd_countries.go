package main

import (
	"fmt"
	"strconv"

	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/utils/catalog"
	"github.com/SscSPs/currency_exchange_app/pkg/client"
	"github.com/spf13/cobra"
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Browse and edit the price catalog",
}

var (
	listActiveOnly bool

	countryName    string
	countryCode    string
	countryPrice   float64
	countryFlag    string
	countryEnabled bool
)

var countriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the catalog",
	RunE:  runCountriesList,
}

var countriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a country",
	RunE:  runCountriesAdd,
}

var countriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of a country",
	Long:  `Only the flags given are changed; the rest of the entry is left as is.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCountriesUpdate,
}

var countriesEnableCmd = &cobra.Command{
	Use:   "enable <id>",
	Short: "Make a country available to the calculator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(c *client.Client, s *client.Session) error {
			return c.EnableCountry(cmd.Context(), s, args[0])
		}, "Country enabled.")
	},
}

var countriesDisableCmd = &cobra.Command{
	Use:   "disable <id>",
	Short: "Hide a country from the calculator",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(c *client.Client, s *client.Session) error {
			return c.DisableCountry(cmd.Context(), s, args[0])
		}, "Country disabled.")
	},
}

var countriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a country from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(c *client.Client, s *client.Session) error {
			return c.DeleteCountry(cmd.Context(), s, args[0])
		}, "Country deleted.")
	},
}

func init() {
	countriesListCmd.Flags().BoolVar(&listActiveOnly, "active", false, "Only entries usable by the calculator")

	countriesAddCmd.Flags().StringVar(&countryName, "name", "", "Country name")
	countriesAddCmd.Flags().StringVar(&countryCode, "code", "", "Currency code, e.g. ARS")
	countriesAddCmd.Flags().Float64Var(&countryPrice, "price", 0, "Units of the currency per 1 USD")
	countriesAddCmd.Flags().StringVar(&countryFlag, "flag", "", "Flag image URL")
	countriesAddCmd.Flags().BoolVar(&countryEnabled, "enabled", true, "Enable right away")
	for _, f := range []string{"name", "code", "price"} {
		_ = countriesAddCmd.MarkFlagRequired(f)
	}

	countriesUpdateCmd.Flags().StringVar(&countryName, "name", "", "New name")
	countriesUpdateCmd.Flags().StringVar(&countryCode, "code", "", "New currency code")
	countriesUpdateCmd.Flags().Float64Var(&countryPrice, "price", 0, "New price per 1 USD")
	countriesUpdateCmd.Flags().StringVar(&countryFlag, "flag", "", "New flag image URL")
	countriesUpdateCmd.Flags().BoolVar(&countryEnabled, "enabled", true, "Enable or disable")

	countriesCmd.AddCommand(countriesListCmd, countriesAddCmd, countriesUpdateCmd,
		countriesEnableCmd, countriesDisableCmd, countriesDeleteCmd)
}

func runCountriesList(cmd *cobra.Command, args []string) error {
	raw, err := newClient().ListCountries(cmd.Context())
	if err != nil {
		return err
	}

	if listActiveOnly {
		snap := catalog.FilterActive(raw)
		rows := make([][]string, 0, len(snap))
		for _, e := range snap {
			rows = append(rows, []string{e.ID, e.Name, e.CurrencyCode, strconv.FormatFloat(e.USDPrice, 'f', -1, 64)})
		}
		printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CODE", "USD PRICE"}, rows)
		return nil
	}

	rows := make([][]string, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, []string{r.ID, r.Name, r.CurrencyCode, fmt.Sprint(orDash(r.USDPrice)), fmt.Sprint(orDash(r.Enabled))})
	}
	printTable(cmd.OutOrStdout(), []string{"ID", "NAME", "CODE", "USD PRICE", "ENABLED"}, rows)
	return nil
}

func orDash(v any) any {
	if v == nil {
		return "-"
	}
	return v
}

func runCountriesAdd(cmd *cobra.Command, args []string) error {
	enabled := countryEnabled
	req := dto.CreateCountryRequest{
		Name:         countryName,
		CurrencyCode: countryCode,
		USDPrice:     countryPrice,
		FlagImage:    countryFlag,
		Enabled:      &enabled,
	}
	var created *dto.CountryResponse
	err := withSession(cmd, func(c *client.Client, s *client.Session) error {
		var err error
		created, err = c.CreateCountry(cmd.Context(), s, req)
		return err
	}, "")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Country created with id %s.\n", created.ID)
	return nil
}

func runCountriesUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]
	edits := client.NewPendingEdits()
	flags := cmd.Flags()
	if flags.Changed("name") {
		edits.SetName(id, countryName)
	}
	if flags.Changed("code") {
		edits.SetCurrencyCode(id, countryCode)
	}
	if flags.Changed("price") {
		edits.SetUSDPrice(id, countryPrice)
	}
	if flags.Changed("flag") {
		edits.SetFlagImage(id, countryFlag)
	}
	if flags.Changed("enabled") {
		edits.SetEnabled(id, countryEnabled)
	}
	if edits.Len() == 0 {
		return fmt.Errorf("nothing to update, pass at least one of --name --code --price --flag --enabled")
	}

	return withSession(cmd, func(c *client.Client, s *client.Session) error {
		return edits.Submit(cmd.Context(), c, s)
	}, "Country updated.")
}

// withSession runs fn with the stored session and prints done on success.
func withSession(cmd *cobra.Command, fn func(*client.Client, *client.Session) error, done string) error {
	s, err := loadSession(sessionFile)
	if err != nil {
		return err
	}
	if err := fn(newClient(), s); err != nil {
		return err
	}
	if done != "" {
		fmt.Fprintln(cmd.OutOrStdout(), done)
	}
	return nil
}
