package model

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillDatabase SkillCategory = "database"
	SkillTool     SkillCategory = "tool"
	SkillLanguage SkillCategory = "language"
)

func ParseSkillCategory(s string) (SkillCategory, bool) {
	switch SkillCategory(s) {
	case SkillFrontend, SkillBackend, SkillDatabase, SkillTool, SkillLanguage:
		return SkillCategory(s), true
	case "":
		return SkillFrontend, true
	}
	return "", false
}

const DefaultSkillIcon = "fas fa-code"

type Skill struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Icon        string        `gorm:"type:varchar(100);not null;default:'fas fa-code'" json:"icon"`
	Category    SkillCategory `gorm:"type:varchar(16);not null;default:'frontend'" json:"category"`
	Description string        `gorm:"type:varchar(200)" json:"description"`
	Featured    bool          `gorm:"not null;default:false" json:"featured"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Skill) TableName() string { return "skills" }
