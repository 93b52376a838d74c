package domain

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
	CurrencyKRW Currency = "KRW"
)

// GoalSpec is the caller-supplied part of a saving goal. The goal service
// owns everything else (id, converted value, timestamps).
type GoalSpec struct {
	Name           string
	Currency       Currency
	GoalValue      float64
	MonthlySavings float64
}

// SavingGoal is a goal as returned by the goal service. The local side never
// stores more than its ID, and timestamps are passed through verbatim.
type SavingGoal struct {
	ID             int64
	Name           string
	Currency       string
	GoalValue      float64
	MonthlySavings float64
	ConvertedValue float64
	CreatedAt      string
}
