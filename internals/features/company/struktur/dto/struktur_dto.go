package dto

import (
	"strings"

	"apgi_backend/internals/features/company/struktur/model"
)

// UpdateStrukturRequest (multipart). File bagan dikirim di field "gambar_bagan";
// tanpa file, field teks "gambar_bagan" (kalau ada) dipakai sebagai URL.
type UpdateStrukturRequest struct {
	Periode   string `form:"periode" json:"periode" validate:"max=100"`
	Deskripsi string `form:"deskripsi" json:"deskripsi"`

	GambarBagan *string `form:"-" json:"-"`
}

func (r *UpdateStrukturRequest) Normalize() {
	r.Periode = strings.TrimSpace(r.Periode)
	r.Deskripsi = strings.TrimSpace(r.Deskripsi)
}

// ApplyTo tidak menyentuh is_active kecuali baris baru dibuat.
func (r *UpdateStrukturRequest) ApplyTo(m *model.StrukturOrganisasiModel, found bool) {
	m.Periode = r.Periode
	m.Deskripsi = r.Deskripsi
	if !found {
		m.IsActive = true
	}
}
