package model

import "time"

type StrukturOrganisasiModel struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	Periode     string    `gorm:"column:periode;size:100" json:"periode"`
	Deskripsi   string    `gorm:"column:deskripsi;type:text" json:"deskripsi"`
	GambarBagan string    `gorm:"column:gambar_bagan;size:500" json:"gambar_bagan"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StrukturOrganisasiModel) TableName() string {
	return "struktur_organisasi"
}
