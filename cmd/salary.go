package cmd

import (
	"github.com/spf13/cobra"

	"lanka-finance/domain"
	"lanka-finance/format"
	"lanka-finance/service"
)

var basicSalary string

var taxCmd = &cobra.Command{
	Use:   "tax <gross-monthly-salary>",
	Short: "Monthly APIT on a gross salary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		calc := service.NewCalculator(cfg.Settings())
		salary := format.ParseAmount(args[0])

		t := newTable(cmd.OutOrStdout())
		t.money("Gross salary", salary)
		t.money("APIT", calc.Tax(salary))
		return t.flush()
	},
}

var salaryCmd = &cobra.Command{
	Use:   "salary <gross-monthly-salary>",
	Short: "Deductions and net salary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if basicSalary != "" {
			cfg.Calculator.ContributionBasis = string(service.BasisBasic)
		}
		calc := service.NewCalculator(cfg.Settings())

		b := calc.Breakdown(domain.SalaryInput{
			Gross: format.ParseAmount(args[0]),
			Basic: format.ParseAmount(basicSalary),
		})

		t := newTable(cmd.OutOrStdout())
		t.money("Gross salary", b.Gross)
		t.money("EPF", b.ContributionDeduction)
		t.money("APIT", b.Tax)
		t.money("Welfare", b.FixedCharge)
		t.money("Total deductions", b.TotalDeductions)
		t.money("Net salary", b.NetSalary)
		return t.flush()
	},
}

func init() {
	salaryCmd.Flags().StringVar(&basicSalary, "basic", "", "basic salary; EPF is computed on it instead of gross")
	rootCmd.AddCommand(taxCmd, salaryCmd)
}
