package model

import (
	"time"

	"github.com/google/uuid"
)

// MinPasswordLen applies to the plaintext, before hashing.
const MinPasswordLen = 6

type Admin struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Password string    `gorm:"type:text;not null" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string { return "admins" }
