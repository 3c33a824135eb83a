package service

import (
	"context"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"gorm.io/datatypes"
)

type SettingsService interface {
	// Get returns the settings singleton, creating it with defaults on
	// first access.
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, in UpdateSettingsInput) (*model.Settings, error)
}

// UpdateSettingsInput carries raw display fields keyed by their API names;
// unknown keys are dropped.
type UpdateSettingsInput struct {
	Fields      map[string]string
	SocialLinks *model.SocialLinks
	AboutImage  *ImageUpload
}

// settingsColumns maps API field names onto DB columns; it doubles as the
// allow-list for partial updates.
var settingsColumns = map[string]string{
	"siteTitle":         "site_title",
	"siteDescription":   "site_description",
	"aboutName":         "about_name",
	"aboutDescription":  "about_description",
	"contactLocation":   "contact_location",
	"contactEmail":      "contact_email",
	"contactPhone":      "contact_phone",
	"contactWebsite":    "contact_website",
	"footerTitle":       "footer_title",
	"footerDescription": "footer_description",
	"copyrightName":     "copyright_name",
	"themeColor":        "theme_color",
	"secondaryColor":    "secondary_color",
}

type settingsService struct {
	r        repo.SettingsRepo
	assets   *AssetManager
	activity Recorder
}

func NewSettingsService(r repo.SettingsRepo, assets *AssetManager, activity Recorder) SettingsService {
	return &settingsService{r: r, assets: assets, activity: activity}
}

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	return s.r.GetOrCreate(ctx)
}

func (s *settingsService) Update(ctx context.Context, in UpdateSettingsInput) (*model.Settings, error) {
	current, err := s.r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any, len(in.Fields)+2)
	for name, value := range in.Fields {
		if col, ok := settingsColumns[name]; ok {
			updates[col] = value
		}
	}
	if in.SocialLinks != nil {
		updates["social_links"] = datatypes.NewJSONType(*in.SocialLinks)
	}

	if in.AboutImage != nil {
		url, err := s.assets.Resolve(ctx, profileAssetFolder, in.AboutImage, "", current.AboutImage)
		if err != nil {
			return nil, err
		}
		updates["about_image"] = url
		if current.AboutImage != "" && url != current.AboutImage {
			s.assets.CleanupReplaced(ctx, current.AboutImage)
		}
	}

	out, err := s.r.Update(ctx, updates)
	if err != nil {
		return nil, err
	}

	s.activity.Record("Settings Updated", "Website settings updated", model.ActivitySettings)
	return out, nil
}
