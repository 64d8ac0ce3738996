package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/utils/calculator"
	"github.com/SscSPs/currency_exchange_app/internal/utils/conversion"
	"github.com/SscSPs/currency_exchange_app/pkg/client"
	"github.com/spf13/cobra"
)

var (
	convertFrom    string
	convertTo      string
	convertReverse bool
	convertRemote  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <amount>",
	Short: "Convert an amount between two catalog currencies",
	Long: `By default the amount is what you send in --from and the result is what
arrives in --to. With --reverse the amount is what should arrive and the
result is what has to be sent. The conversion runs locally against the
active catalog unless --remote asks the server to do it.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Interactive two-field calculator",
	RunE:  runCalc,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", calculator.DefaultLeftCurrency, "Currency you send")
	convertCmd.Flags().StringVar(&convertTo, "to", calculator.DefaultRightCurrency, "Currency that arrives")
	convertCmd.Flags().BoolVar(&convertReverse, "reverse", false, "Amount is what should arrive")
	convertCmd.Flags().BoolVar(&convertRemote, "remote", false, "Let the server convert")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from := strings.ToUpper(convertFrom)
	to := strings.ToUpper(convertTo)
	c := newClient()

	if convertRemote {
		dir := conversion.LeftToRight
		if convertReverse {
			dir = conversion.RightToLeft
		}
		var amount float64
		if _, err := fmt.Sscan(args[0], &amount); err != nil {
			return fmt.Errorf("amount %q is not a number", args[0])
		}
		if !conversion.Valid(amount) {
			return fmt.Errorf("no valid conversion of %q between %s and %s", args[0], from, to)
		}
		resp, err := c.Convert(cmd.Context(), amount, from, to, dir)
		if err != nil {
			return err
		}
		if !resp.Valid {
			return fmt.Errorf("no valid conversion between %s and %s", from, to)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatLine(args[0], resp.Result, from, to, convertReverse))
		return nil
	}

	feed := client.NewCatalogFeed(c, logger)
	snap, err := feed.Refresh(cmd.Context())
	if err != nil {
		return err
	}
	sync := calculator.New(snap, from, to)
	if convertReverse {
		sync.EditRight(args[0])
	} else {
		sync.EditLeft(args[0])
	}
	st := sync.State()
	result := st.RightAmount
	if convertReverse {
		result = st.LeftAmount
	}
	if result == "" {
		return fmt.Errorf("no valid conversion of %q between %s and %s", args[0], from, to)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatLine(args[0], result, from, to, convertReverse))
	return nil
}

func formatLine(amount, result, from, to string, reverse bool) string {
	if reverse {
		return fmt.Sprintf("Send %s %s to receive %s %s", result, from, amount, to)
	}
	return fmt.Sprintf("Send %s %s to receive %s %s", amount, from, result, to)
}
