package dto

import (
	"strings"

	"apgi_backend/internals/features/company/kontak/model"
)

type UpdateKontakRequest struct {
	Alamat          string `json:"alamat" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	Telepon         string `json:"telepon" validate:"max=50"`
	Whatsapp        string `json:"whatsapp" validate:"max=50"`
	GoogleMapsURL   string `json:"google_maps_url"`
	GoogleMapsEmbed string `json:"google_maps_embed"`
	JamOperasional  string `json:"jam_operasional"`
}

func (r *UpdateKontakRequest) Normalize() {
	r.Alamat = strings.TrimSpace(r.Alamat)
	r.Email = strings.TrimSpace(r.Email)
	r.Telepon = strings.TrimSpace(r.Telepon)
	r.Whatsapp = strings.TrimSpace(r.Whatsapp)
	r.GoogleMapsURL = strings.TrimSpace(r.GoogleMapsURL)
	r.GoogleMapsEmbed = strings.TrimSpace(r.GoogleMapsEmbed)
	r.JamOperasional = strings.TrimSpace(r.JamOperasional)
}

func (r *UpdateKontakRequest) ToModel() *model.KontakModel {
	return &model.KontakModel{
		Alamat:          r.Alamat,
		Email:           r.Email,
		Telepon:         r.Telepon,
		Whatsapp:        r.Whatsapp,
		GoogleMapsURL:   r.GoogleMapsURL,
		GoogleMapsEmbed: r.GoogleMapsEmbed,
		JamOperasional:  r.JamOperasional,
	}
}
