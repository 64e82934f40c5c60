package model

import "time"

type WebsiteInfoModel struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	SiteTitle       string    `gorm:"column:site_title;size:255;not null" json:"site_title"`
	SiteDescription string    `gorm:"column:site_description;type:text" json:"site_description"`
	FaviconURL      string    `gorm:"column:favicon_url;size:500" json:"favicon_url"`
	HeroBannerURL   string    `gorm:"column:hero_banner_url;size:500" json:"hero_banner_url"`
	FooterCopyright string    `gorm:"column:footer_copyright;size:255" json:"footer_copyright"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WebsiteInfoModel) TableName() string {
	return "website_info"
}
