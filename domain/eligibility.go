package domain

// LoanAffordability is the installment a lender allows for one salary.
type LoanAffordability struct {
	Salary       float64
	LoanPortion  float64
	Contribution float64
	Tax          float64
	Deductions   float64
	Installment  float64
}

type JointEligibility struct {
	ApplicantA          LoanAffordability
	ApplicantB          LoanAffordability
	TotalMaxInstallment float64
}
