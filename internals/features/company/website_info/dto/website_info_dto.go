package dto

import (
	"strings"

	"apgi_backend/internals/features/company/website_info/model"
)

// UpdateWebsiteInfoRequest (multipart). File: favicon, hero_banner.
// URL pengganti: favicon_url, hero_banner_url (nil = tidak dikirim).
type UpdateWebsiteInfoRequest struct {
	SiteTitle       string `form:"site_title" json:"site_title" validate:"required,max=255"`
	SiteDescription string `form:"site_description" json:"site_description"`
	FooterCopyright string `form:"footer_copyright" json:"footer_copyright" validate:"max=255"`

	FaviconURL    *string `form:"-" json:"-"`
	HeroBannerURL *string `form:"-" json:"-"`
}

func (r *UpdateWebsiteInfoRequest) Normalize() {
	r.SiteTitle = strings.TrimSpace(r.SiteTitle)
	r.SiteDescription = strings.TrimSpace(r.SiteDescription)
	r.FooterCopyright = strings.TrimSpace(r.FooterCopyright)
}

func (r *UpdateWebsiteInfoRequest) ApplyTo(m *model.WebsiteInfoModel) {
	m.SiteTitle = r.SiteTitle
	m.SiteDescription = r.SiteDescription
	m.FooterCopyright = r.FooterCopyright
}
