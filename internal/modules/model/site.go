package model

import (
	"time"

	"github.com/google/uuid"
)

type SiteCategory string

const (
	SiteSocial       SiteCategory = "social"
	SiteProfessional SiteCategory = "professional"
	SitePortfolio    SiteCategory = "portfolio"
)

func ParseSiteCategory(s string) (SiteCategory, bool) {
	switch SiteCategory(s) {
	case SiteSocial, SiteProfessional, SitePortfolio:
		return SiteCategory(s), true
	case "":
		return SiteSocial, true
	}
	return "", false
}

const DefaultSiteIcon = "fas fa-globe"

type Site struct {
	ID           uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string       `gorm:"type:varchar(100);not null" json:"name"`
	URL          string       `gorm:"type:text;not null" json:"url"`
	Icon         string       `gorm:"type:varchar(100);not null;default:'fas fa-globe'" json:"icon"`
	Description  string       `gorm:"type:varchar(200)" json:"description"`
	Category     SiteCategory `gorm:"type:varchar(16);not null;default:'social'" json:"category"`
	DisplayOrder int          `gorm:"not null;default:0" json:"displayOrder"`
	Active       bool         `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Site) TableName() string { return "sites" }
