package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DayKeyLayout buckets visits by calendar day in the server's local zone.
const DayKeyLayout = "2006-01-02"

// DayKey renders t as the visitor bucket key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// VisitorDay holds one calendar day's visit counter and the set of client
// IPs seen that day. One record per day key.
type VisitorDay struct {
	ID          uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Date        string                      `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	Count       int                         `gorm:"not null;default:1" json:"count"`
	IPAddresses datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"ipAddresses"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (VisitorDay) TableName() string { return "visitor_days" }

// HasIP reports whether ip is already in the day's set.
func (v *VisitorDay) HasIP(ip string) bool {
	for _, seen := range v.IPAddresses {
		if seen == ip {
			return true
		}
	}
	return false
}
