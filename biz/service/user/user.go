package user

import (
	"context"
	"errors"

	"goalkeeper/api/biz/dal/repo"
	"goalkeeper/api/biz/model/domain"
	"goalkeeper/api/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UserRepo is the slice of the user store the coordinator depends on.
type UserRepo interface {
	Create(ctx context.Context, username, password string, salary float64) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Rename(ctx context.Context, username, newUsername string) (*domain.User, error)
	UpdateSalary(ctx context.Context, username string, newSalary float64) (*domain.User, error)
	AppendGoalID(ctx context.Context, username string, goalID int64) (*domain.User, error)
	RemoveGoalID(ctx context.Context, username string, goalID int64) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}

// GoalGateway is the outbound goal-service boundary. A nil record (or false
// confirmation) is the gateway's single undifferentiated failure signal; the
// coordinator never learns whether the cause was a miss or an outage.
type GoalGateway interface {
	CreateGoal(ctx context.Context, spec domain.GoalSpec) *domain.SavingGoal
	FetchGoal(ctx context.Context, goalID int64) *domain.SavingGoal
	UpdateGoal(ctx context.Context, goalID int64, spec domain.GoalSpec) *domain.SavingGoal
	DeleteGoal(ctx context.Context, goalID int64) bool
}

// Service coordinates the local user table with the remote goal service.
// Remote mutations always run before the local reference update, so a
// partial failure can orphan remote state but never fabricate a local
// reference to a goal that was not created.
type Service struct {
	users UserRepo
	goals GoalGateway
}

func New(users UserRepo, goals GoalGateway) *Service {
	return &Service{users: users, goals: goals}
}

func (s *Service) CreateUser(ctx context.Context, username, password string) (*domain.User, errs.Error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.ServerError
	}
	if existing != nil {
		return nil, errs.UsernameDuplicated
	}

	u, err := s.users.Create(ctx, username, password, 0)
	if err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			return nil, errs.UsernameDuplicated
		}
		hlog.CtxWarnf(ctx, "create user %s failed: %v", username, err)
		return nil, errs.ServerError
	}
	return u, nil
}

// GetUserWithGoals resolves every referenced goal through the gateway.
// Unresolvable ids are skipped, not treated as errors; partial results are
// acceptable on this read path.
func (s *Service) GetUserWithGoals(ctx context.Context, username string) (*domain.UserGoals, errs.Error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}

	out := &domain.UserGoals{
		User:  u,
		Goals: make([]domain.SavingGoal, 0, len(u.GoalIDs)),
	}
	for _, goalID := range u.GoalIDs {
		g := s.goals.FetchGoal(ctx, goalID)
		if g == nil {
			hlog.CtxWarnf(ctx, "saving goal %d not resolvable, skipping", goalID)
			continue
		}
		out.TotalSavings += g.MonthlySavings
		out.Goals = append(out.Goals, *g)
	}
	return out, nil
}

// DeleteUser removes the local row only. Goals referenced by the user stay
// in the remote store and become orphans.
func (s *Service) DeleteUser(ctx context.Context, username string) errs.Error {
	if err := s.users.Delete(ctx, username); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return errs.UserNotFound
		}
		hlog.CtxWarnf(ctx, "delete user %s failed: %v", username, err)
		return errs.ServerError
	}
	return nil
}

func (s *Service) RenameUser(ctx context.Context, username, newUsername string) (*domain.User, errs.Error) {
	u, err := s.users.Rename(ctx, username, newUsername)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			return nil, errs.UserNotFound
		case errors.Is(err, repo.ErrUsernameTaken):
			return nil, errs.UsernameDuplicated
		}
		hlog.CtxWarnf(ctx, "rename user %s failed: %v", username, err)
		return nil, errs.ServerError
	}
	return u, nil
}

func (s *Service) UpdateSalary(ctx context.Context, username string, newSalary float64) (*domain.User, errs.Error) {
	u, err := s.users.UpdateSalary(ctx, username, newSalary)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, errs.UserNotFound
		}
		hlog.CtxWarnf(ctx, "update salary for user %s failed: %v", username, err)
		return nil, errs.ServerError
	}
	return u, nil
}

// CreateGoalForUser creates the goal remotely first and appends the returned
// id afterwards. When the gateway fails nothing is appended; when only the
// append fails the remote goal is left orphaned, which is accepted.
func (s *Service) CreateGoalForUser(ctx context.Context, username string, spec domain.GoalSpec) (*domain.User, errs.Error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}

	g := s.goals.CreateGoal(ctx, spec)
	if g == nil {
		return nil, errs.GoalGatewayError.SetMsg("failed to create goal in goal service")
	}

	updated, err := s.users.AppendGoalID(ctx, username, g.ID)
	if err != nil {
		hlog.CtxWarnf(ctx, "goal %d created remotely but not linked to user %s: %v", g.ID, username, err)
		if errors.Is(err, repo.ErrUserNotFound) {
			return nil, errs.UserNotFound
		}
		return nil, errs.ServerError
	}
	return updated, nil
}

func (s *Service) GetGoalForUser(ctx context.Context, username string, goalID int64) (*domain.SavingGoal, errs.Error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}
	if !u.HasGoal(goalID) {
		return nil, errs.GoalNotFound
	}

	g := s.goals.FetchGoal(ctx, goalID)
	if g == nil {
		return nil, errs.GoalNotFound
	}
	return g, nil
}

// DeleteGoalForUser deletes remotely first; the local reference is removed
// only after the remote delete is confirmed.
func (s *Service) DeleteGoalForUser(ctx context.Context, username string, goalID int64) errs.Error {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return errs.ServerError
	}
	if u == nil {
		return errs.UserNotFound
	}
	if !u.HasGoal(goalID) {
		return errs.GoalNotFound
	}

	if !s.goals.DeleteGoal(ctx, goalID) {
		return errs.GoalGatewayError.SetMsg("failed to delete goal in goal service")
	}

	if _, err := s.users.RemoveGoalID(ctx, username, goalID); err != nil {
		// remote side is already gone, the local id now dangles
		hlog.CtxWarnf(ctx, "goal %d deleted remotely but still referenced by user %s: %v", goalID, username, err)
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			return errs.UserNotFound
		case errors.Is(err, repo.ErrGoalNotAssociated):
			return errs.GoalNotFound
		}
		return errs.ServerError
	}
	return nil
}

// UpdateGoalForUser delegates entirely to the gateway after the membership
// checks; local state is untouched and the gateway's record is returned
// verbatim.
func (s *Service) UpdateGoalForUser(ctx context.Context, username string, goalID int64, spec domain.GoalSpec) (*domain.SavingGoal, errs.Error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotFound
	}
	if !u.HasGoal(goalID) {
		return nil, errs.GoalNotFound
	}

	g := s.goals.UpdateGoal(ctx, goalID, spec)
	if g == nil {
		return nil, errs.GoalGatewayError.SetMsg("failed to update goal in goal service")
	}
	return g, nil
}
