package model

import "time"

type KontakModel struct {
	ID              uint      `gorm:"primaryKey;column:id" json:"id"`
	Alamat          string    `gorm:"column:alamat;type:text" json:"alamat"`
	Email           string    `gorm:"column:email;size:255" json:"email"`
	Telepon         string    `gorm:"column:telepon;size:50" json:"telepon"`
	Whatsapp        string    `gorm:"column:whatsapp;size:50" json:"whatsapp"`
	GoogleMapsURL   string    `gorm:"column:google_maps_url;type:text" json:"google_maps_url"`
	GoogleMapsEmbed string    `gorm:"column:google_maps_embed;type:text" json:"google_maps_embed"`
	JamOperasional  string    `gorm:"column:jam_operasional;type:text" json:"jam_operasional"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KontakModel) TableName() string {
	return "kontak"
}
