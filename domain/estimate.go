package domain

type ApplicantType string

const (
	ApplicantSingle ApplicantType = "single"
	ApplicantJoint  ApplicantType = "joint"
)

type SalaryCombination struct {
	SalaryA float64
	SalaryB float64
	Total   float64
}

type EstimationInput struct {
	HouseCost     float64
	DownPayment   float64
	InterestRate  float64
	TermYears     int
	ApplicantType ApplicantType
}

type EstimationResult struct {
	LoanAmount           float64
	MonthlyPayment       float64
	SingleRequiredSalary float64
	JointCombinations    []SalaryCombination
	Error                string `json:",omitempty"`
}
