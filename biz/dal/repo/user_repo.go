package repo

import (
	"context"
	"errors"

	"goalkeeper/api/biz/model/convert"
	"goalkeeper/api/biz/model/domain"
	"goalkeeper/api/biz/model/errs"
	"goalkeeper/api/biz/model/storage"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrGoalNotAssociated = errors.New("goal id not associated with user")
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row. The unique index on username is the
// authority: a concurrent insert of the same name surfaces as
// ErrUsernameTaken, never as a silent overwrite.
func (r *UserRepository) Create(ctx context.Context, username, password string, salary float64) (*domain.User, error) {
	m := &storage.UserRecord{
		Username: username,
		Password: password,
		Salary:   roundMoney(salary),
		GoalIds:  storage.GoalIDList{},
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *UserRepository) Rename(ctx context.Context, username, newUsername string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var taken int64
		if err := tx.Model(&storage.UserRecord{}).Where("username = ?", newUsername).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrUsernameTaken
		}

		m.Username = newUsername
		if err := tx.Save(&m).Error; err != nil {
			if errs.IsDuplicatedErr(err) {
				return ErrUsernameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *UserRepository) UpdateSalary(ctx context.Context, username string, newSalary float64) (*domain.User, error) {
	rounded := roundMoney(newSalary)

	var m storage.UserRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		m.Salary = rounded
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

// AppendGoalID adds a goal reference. Duplicates are not filtered; the goal
// service owns id uniqueness, this side only keeps references.
func (r *UserRepository) AppendGoalID(ctx context.Context, username string, goalID int64) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		ids := make(storage.GoalIDList, 0, len(m.GoalIds)+1)
		ids = append(ids, m.GoalIds...)
		ids = append(ids, goalID)
		m.GoalIds = ids
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *UserRepository) RemoveGoalID(ctx context.Context, username string, goalID int64) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", username).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		ids := make(storage.GoalIDList, 0, len(m.GoalIds))
		found := false
		for _, id := range m.GoalIds {
			if id == goalID && !found {
				found = true
				continue
			}
			ids = append(ids, id)
		}
		if !found {
			return ErrGoalNotAssociated
		}

		m.GoalIds = ids
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Where("username = ?", username).Delete(&storage.UserRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// roundMoney keeps stored amounts at 2 decimal places without float drift.
func roundMoney(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
