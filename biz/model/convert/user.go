package convert

import (
	"goalkeeper/api/biz/model/domain"
	"goalkeeper/api/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:   u.UserID,
		Username: u.Username,
		Password: u.Password,
		Salary:   u.Salary,
		GoalIds:  storage.GoalIDList(u.GoalIDs),
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	goalIDs := make([]int64, len(m.GoalIds))
	copy(goalIDs, m.GoalIds)
	return &domain.User{
		UserID:    m.UserId,
		Username:  m.Username,
		Password:  m.Password,
		Salary:    m.Salary,
		GoalIDs:   goalIDs,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
