package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"lanka-finance/domain"
	"lanka-finance/format"
	"lanka-finance/service"
)

var (
	downPayment string
	jointApply  bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <house-cost>",
	Short: "Salary needed to carry the loan on a house",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		estimator, release, err := newEstimator(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		defer release()

		rate, years := loanTerms(cmd, cfg.Loan.InterestRate, cfg.Loan.EstimatorTermYears)
		applicant := domain.ApplicantSingle
		if jointApply {
			applicant = domain.ApplicantJoint
		}

		result := estimator.Estimate(cmd.Context(), domain.EstimationInput{
			HouseCost:     format.ParseAmount(args[0]),
			DownPayment:   format.ParseAmount(downPayment),
			InterestRate:  rate,
			TermYears:     years,
			ApplicantType: applicant,
		})

		t := newTable(cmd.OutOrStdout())
		t.money("Loan amount", result.LoanAmount)
		t.money("Monthly payment", result.MonthlyPayment)
		if jointApply {
			t.row("")
			t.row("#", "Applicant 1", "Applicant 2", "Combined")
			for i, c := range result.JointCombinations {
				t.row(strconv.Itoa(i+1), format.Currency(c.SalaryA), format.Currency(c.SalaryB), format.Currency(c.Total))
			}
		} else {
			t.money("Required salary", result.SingleRequiredSalary)
		}
		if err := t.flush(); err != nil {
			return err
		}

		if result.Error != "" {
			return errors.New(result.Error)
		}
		return nil
	},
}

var requiredSalaryCmd = &cobra.Command{
	Use:   "required-salary <installment>",
	Short: "Smallest salary whose eligibility covers an installment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		estimator, release, err := newEstimator(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("cache: %w", err)
		}
		defer release()

		installment := format.ParseAmount(args[0])
		salary := estimator.RequiredSalary(cmd.Context(), installment)
		if installment > 0 && salary == 0 {
			return errors.New(service.UserMessage(service.ErrSalaryTooHigh))
		}

		t := newTable(cmd.OutOrStdout())
		t.money("Installment", installment)
		t.money("Required salary", salary)
		return t.flush()
	},
}

func init() {
	estimateCmd.Flags().StringVar(&downPayment, "down", "", "down payment")
	estimateCmd.Flags().StringVar(&loanRate, "rate", "", "annual interest rate in percent (default from config)")
	estimateCmd.Flags().StringVar(&loanYears, "years", "", "term in years (default from config)")
	estimateCmd.Flags().BoolVar(&jointApply, "joint", false, "split the installment between two applicants")
	rootCmd.AddCommand(estimateCmd, requiredSalaryCmd)
}
