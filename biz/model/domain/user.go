package domain

import "time"

type User struct {
	UserID    string
	Username  string
	Password  string
	Salary    float64
	GoalIDs   []int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserGoals is the aggregate view of a user joined with whatever goals the
// goal service could resolve. TotalSavings sums monthly savings across the
// resolved goals only.
type UserGoals struct {
	User         *User
	Goals        []SavingGoal
	TotalSavings float64
}

// HasGoal reports whether goalID is currently referenced by the user.
func (u *User) HasGoal(goalID int64) bool {
	for _, id := range u.GoalIDs {
		if id == goalID {
			return true
		}
	}
	return false
}
