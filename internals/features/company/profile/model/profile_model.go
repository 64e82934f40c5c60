package model

import "time"

// ProfileOrganisasiModel: profil perusahaan, satu baris (id=1).
type ProfileOrganisasiModel struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id"`
	NamaOrganisasi   string    `gorm:"column:nama_organisasi;size:255;not null" json:"nama_organisasi"`
	Tagline          string    `gorm:"column:tagline;size:255" json:"tagline"`
	DeskripsiSingkat string    `gorm:"column:deskripsi_singkat;type:text" json:"deskripsi_singkat"`
	DeskripsiLengkap string    `gorm:"column:deskripsi_lengkap;type:text" json:"deskripsi_lengkap"`
	BidangUsaha      string    `gorm:"column:bidang_usaha;type:text" json:"bidang_usaha"`
	LogoURL          string    `gorm:"column:logo_url;size:500" json:"logo_url"`
	TahunBerdiri     *int      `gorm:"column:tahun_berdiri" json:"tahun_berdiri"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileOrganisasiModel) TableName() string {
	return "profile_organisasi"
}
