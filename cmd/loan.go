package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"lanka-finance/domain"
	"lanka-finance/format"
	"lanka-finance/service"
)

var (
	loanRate     string
	loanYears    string
	showSchedule bool
)

// loanTerms reads the rate and term flags, keeping configured defaults for
// flags that were not given.
func loanTerms(cmd *cobra.Command, rate float64, years int) (float64, int) {
	if cmd.Flags().Changed("rate") {
		rate = format.ParseAmount(loanRate)
	}
	if cmd.Flags().Changed("years") {
		years = format.ParseYears(loanYears)
	}
	return rate, years
}

var loanCmd = &cobra.Command{
	Use:   "loan <amount>",
	Short: "Monthly installment and totals for a fixed-rate loan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		calc := service.NewCalculator(cfg.Settings())

		rate, years := loanTerms(cmd, cfg.Loan.InterestRate, cfg.Loan.PaymentTermYears)
		input := domain.LoanInput{
			Principal:    format.ParseAmount(args[0]),
			InterestRate: rate,
			TermYears:    years,
		}
		result := calc.Amortize(input)

		t := newTable(cmd.OutOrStdout())
		t.money("Monthly payment", result.MonthlyPayment)
		t.money("Total payment", result.TotalPayment)
		t.money("Total interest", result.TotalInterest)
		if showSchedule {
			t.row("")
			t.row("Month", "Payment", "Interest", "Principal", "Balance")
			for _, e := range calc.Schedule(input) {
				t.row(strconv.Itoa(e.Month),
					format.Currency(e.Payment),
					format.Currency(e.Interest),
					format.Currency(e.Principal),
					format.Currency(e.Balance))
			}
		}
		return t.flush()
	},
}

func init() {
	loanCmd.Flags().StringVar(&loanRate, "rate", "", "annual interest rate in percent (default from config)")
	loanCmd.Flags().StringVar(&loanYears, "years", "", "term in years (default from config)")
	loanCmd.Flags().BoolVar(&showSchedule, "schedule", false, "print the monthly schedule")
	rootCmd.AddCommand(loanCmd)
}
