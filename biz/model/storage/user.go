package storage

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/soft_delete"
)

type GormModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt soft_delete.DeletedAt `gorm:"uniqueIndex:uniq_username"`
}

// GoalIDList is the JSON-serialized goal reference column. It is a plain
// value type: mutations build a new slice and the whole column is rewritten
// on every update.
type GoalIDList []int64

func (l GoalIDList) Value() (driver.Value, error) {
	if l == nil {
		l = GoalIDList{}
	}
	b, err := sonic.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *GoalIDList) Scan(src any) error {
	if src == nil {
		*l = GoalIDList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return sonic.Unmarshal(v, l)
	case string:
		return sonic.UnmarshalString(v, l)
	default:
		return fmt.Errorf("unsupported goal_ids column type %T", src)
	}
}

type UserRecord struct {
	GormModel
	UserId   string     `gorm:"size:64;not null;uniqueIndex"`                // 用户唯一索引
	Username string     `gorm:"size:100;not null;uniqueIndex:uniq_username"` // 用户唯一登录名
	Password string     `gorm:"size:255;not null"`
	Salary   float64    `gorm:"not null;default:0"`
	GoalIds  GoalIDList `gorm:"type:json"`
}

func (UserRecord) TableName() string {
	return "user_info"
}

func (u *UserRecord) BeforeCreate(tx *gorm.DB) error {
	if u.UserId == "" {
		u.UserId = uuid.NewString()
	}
	if u.GoalIds == nil {
		u.GoalIds = GoalIDList{}
	}
	return nil
}
