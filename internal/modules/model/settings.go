package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Dribbble string `json:"dribbble"`
}

// Settings is the site-wide display configuration. Exactly one row exists;
// it is created with defaults on first access.
type Settings struct {
	ID                uuid.UUID                           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SiteTitle         string                              `gorm:"type:text" json:"siteTitle"`
	SiteDescription   string                              `gorm:"type:text" json:"siteDescription"`
	AboutName         string                              `gorm:"type:text" json:"aboutName"`
	AboutDescription  string                              `gorm:"type:text" json:"aboutDescription"`
	AboutImage        string                              `gorm:"type:text" json:"aboutImage"`
	ContactLocation   string                              `gorm:"type:text" json:"contactLocation"`
	ContactEmail      string                              `gorm:"type:text" json:"contactEmail"`
	ContactPhone      string                              `gorm:"type:text" json:"contactPhone"`
	ContactWebsite    string                              `gorm:"type:text" json:"contactWebsite"`
	FooterTitle       string                              `gorm:"type:text" json:"footerTitle"`
	FooterDescription string                              `gorm:"type:text" json:"footerDescription"`
	CopyrightName     string                              `gorm:"type:text" json:"copyrightName"`
	SocialLinks       datatypes.JSONType[SocialLinks]     `gorm:"type:jsonb" json:"socialLinks"`
	ThemeColor        string                              `gorm:"type:varchar(16)" json:"themeColor"`
	SecondaryColor    string                              `gorm:"type:varchar(16)" json:"secondaryColor"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Settings) TableName() string { return "settings" }

// DefaultSettings returns the row seeded on first access.
func DefaultSettings() *Settings {
	return &Settings{
		SiteTitle:         "Samir Chaudhary Portfolio",
		SiteDescription:   "Full Stack Developer & UI/UX Designer",
		AboutName:         "Samir Chaudhary",
		AboutDescription:  "I'm a passionate full-stack developer with expertise in modern web technologies...",
		ContactLocation:   "Kathmandu, Nepal",
		ContactEmail:      "samir@example.com",
		ContactPhone:      "+977 9800000000",
		ContactWebsite:    "www.samirportfolio.com",
		FooterTitle:       "Samir Chaudhary",
		FooterDescription: "Creating digital experiences that inspire and engage users.",
		CopyrightName:     "Samir Chaudhary",
		SocialLinks: datatypes.NewJSONType(SocialLinks{
			GitHub:   "#",
			LinkedIn: "#",
			Twitter:  "#",
			Dribbble: "#",
		}),
		ThemeColor:     "#3498db",
		SecondaryColor: "#2c3e50",
	}
}
