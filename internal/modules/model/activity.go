package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityLogin    ActivityType = "login"
	ActivityProject  ActivityType = "project"
	ActivitySkill    ActivityType = "skill"
	ActivitySite     ActivityType = "site"
	ActivityMessage  ActivityType = "message"
	ActivitySettings ActivityType = "settings"
)

// Activity is an append-only audit entry; nothing updates or deletes these.
type Activity struct {
	ID       uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Activity string       `gorm:"type:text;not null" json:"activity"`
	Details  string       `gorm:"type:text;not null" json:"details"`
	Type     ActivityType `gorm:"type:varchar(16);not null;default:'project'" json:"type"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Activity) TableName() string { return "activities" }
