package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission. Immutable after creation except
// the read flag.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null" json:"name"`
	Email     string    `gorm:"type:varchar(254);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(100);not null" json:"subject"`
	Body      string    `gorm:"column:message;type:varchar(1000);not null" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	IPAddress string    `gorm:"type:varchar(64)" json:"ipAddress"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Message) TableName() string { return "messages" }
