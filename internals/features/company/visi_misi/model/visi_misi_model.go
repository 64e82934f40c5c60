package model

import "time"

// VisiMisiModel: satu baris (id=1) pemilik daftar misi.
type VisiMisiModel struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Visi      string    `gorm:"column:visi;type:text" json:"visi"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	MisiList []MisiModel `gorm:"foreignKey:VisiMisiID;constraint:OnDelete:CASCADE" json:"misi_list"`
}

func (VisiMisiModel) TableName() string {
	return "visi_misi"
}

// MisiModel: urutan selalu rapat 1..N sesuai urutan kiriman terakhir.
type MisiModel struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	VisiMisiID uint   `gorm:"column:visi_misi_id;not null;index:idx_misi_parent_urutan,priority:1" json:"-"`
	Urutan     int    `gorm:"column:urutan;not null;index:idx_misi_parent_urutan,priority:2" json:"urutan"`
	TeksMisi   string `gorm:"column:teks_misi;type:text;not null" json:"teks_misi"`
	IsActive   bool   `gorm:"column:is_active;not null" json:"-"`
}

func (MisiModel) TableName() string {
	return "misi"
}
