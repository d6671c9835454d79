package cmd

import (
	"github.com/spf13/cobra"

	"lanka-finance/domain"
	"lanka-finance/format"
	"lanka-finance/service"
)

var eligibilityCmd = &cobra.Command{
	Use:   "eligibility <salary-a> [salary-b]",
	Short: "Maximum loan installment for one or two applicants",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		calc := service.NewCalculator(cfg.Settings())

		joint := len(args) == 2
		var salaryB float64
		if joint {
			salaryB = format.ParseAmount(args[1])
		}
		result := calc.JointEligibility(format.ParseAmount(args[0]), salaryB, joint)

		t := newTable(cmd.OutOrStdout())
		writeApplicant(t, "Applicant 1", result.ApplicantA)
		if joint {
			writeApplicant(t, "Applicant 2", result.ApplicantB)
		}
		t.money("Total max installment", result.TotalMaxInstallment)
		return t.flush()
	},
}

func writeApplicant(t *table, name string, a domain.LoanAffordability) {
	t.row(name)
	t.money("  Salary", a.Salary)
	t.money("  Loan portion", a.LoanPortion)
	t.money("  EPF", a.Contribution)
	t.money("  APIT", a.Tax)
	t.money("  Deductions", a.Deductions)
	t.money("  Installment", a.Installment)
}

func init() {
	rootCmd.AddCommand(eligibilityCmd)
}
