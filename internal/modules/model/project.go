package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectCategory string

const (
	ProjectWeb    ProjectCategory = "web"
	ProjectMobile ProjectCategory = "mobile"
	ProjectDesign ProjectCategory = "design"
	ProjectOther  ProjectCategory = "other"
)

// ParseProjectCategory validates a raw category string. Empty input falls
// back to the default.
func ParseProjectCategory(s string) (ProjectCategory, bool) {
	switch ProjectCategory(s) {
	case ProjectWeb, ProjectMobile, ProjectDesign, ProjectOther:
		return ProjectCategory(s), true
	case "":
		return ProjectWeb, true
	}
	return "", false
}

type ProjectStatus string

const (
	StatusActive   ProjectStatus = "active"
	StatusInactive ProjectStatus = "inactive"
)

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch ProjectStatus(s) {
	case StatusActive, StatusInactive:
		return ProjectStatus(s), true
	case "":
		return StatusActive, true
	}
	return "", false
}

type Project struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string          `gorm:"type:varchar(100);not null" json:"title"`
	Category    ProjectCategory `gorm:"type:varchar(16);not null;default:'web'" json:"category"`
	Description string          `gorm:"type:varchar(1000);not null" json:"description"`
	// Image is a plain URL string: either a local /uploads/... path or a
	// URL issued by the asset store.
	Image        string                      `gorm:"type:text;not null" json:"image"`
	Technologies datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"technologies"`
	LiveURL      string                      `gorm:"type:text" json:"liveUrl"`
	GithubURL    string                      `gorm:"type:text" json:"githubUrl"`
	DatePosted   string                      `gorm:"type:varchar(10)" json:"datePosted"`
	Featured     bool                        `gorm:"not null;default:false" json:"featured"`
	Status       ProjectStatus               `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Views        int                         `gorm:"not null;default:0" json:"views"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }
