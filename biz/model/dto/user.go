package dto

type CreateUserReq struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=255"`
}

type RenameUserReq struct {
	NewUsername string `json:"new_username" validate:"required,max=100"`
}

type UpdateSalaryReq struct {
	// pointer so a missing field is rejected instead of read as 0
	NewSalary *float64 `json:"new_salary" validate:"required,gte=0"`
}

type SavingGoalReq struct {
	GoalName       string  `json:"goal_name" validate:"required,max=100"`
	GoalCurrency   string  `json:"goal_currency" validate:"required,oneof=USD BRL EUR JPY KRW"`
	GoalValue      float64 `json:"goal_value" validate:"gt=0"`
	MonthlySavings float64 `json:"monthly_savings" validate:"gte=0"`
}

type UserResp struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Salary    float64 `json:"salary"`
	GoalIDs   []int64 `json:"goal_ids"`
	CreatedAt string  `json:"created_at"`
}

type SavingGoalResp struct {
	ID             int64   `json:"id"`
	GoalName       string  `json:"goal_name"`
	GoalCurrency   string  `json:"goal_currency"`
	GoalValue      float64 `json:"goal_value"`
	MonthlySavings float64 `json:"monthly_savings"`
	ConvertedValue float64 `json:"converted_value"`
	CreatedAt      string  `json:"created_at"`
}

type UserGoalsResp struct {
	Username     string           `json:"username"`
	Password     string           `json:"password"`
	Goals        []SavingGoalResp `json:"goals"`
	Salary       float64          `json:"salary"`
	TotalSavings float64          `json:"total_savings"`
	CreatedAt    string           `json:"created_at"`
}
