package dto

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"apgi_backend/internals/features/company/profile/model"
)

// UpdateProfileRequest dikirim sebagai multipart/form-data (file di field "logo").
// LogoURL & TahunBerdiri diisi controller dari form: nil = field tidak dikirim.
type UpdateProfileRequest struct {
	NamaOrganisasi   string `form:"nama_organisasi" json:"nama_organisasi" validate:"required,max=255"`
	Tagline          string `form:"tagline" json:"tagline" validate:"max=255"`
	DeskripsiSingkat string `form:"deskripsi_singkat" json:"deskripsi_singkat"`
	DeskripsiLengkap string `form:"deskripsi_lengkap" json:"deskripsi_lengkap"`
	BidangUsaha      string `form:"bidang_usaha" json:"bidang_usaha"`

	LogoURL      *string `form:"-" json:"-"`
	TahunBerdiri *string `form:"-" json:"-"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.NamaOrganisasi = strings.TrimSpace(r.NamaOrganisasi)
	r.Tagline = strings.TrimSpace(r.Tagline)
	r.DeskripsiSingkat = strings.TrimSpace(r.DeskripsiSingkat)
	r.DeskripsiLengkap = strings.TrimSpace(r.DeskripsiLengkap)
	r.BidangUsaha = strings.TrimSpace(r.BidangUsaha)
}

// ParseTahunBerdiri: set=false kalau field tidak dikirim (nilai lama dipertahankan).
// Dikirim kosong → set=true, year=nil.
func (r *UpdateProfileRequest) ParseTahunBerdiri() (set bool, year *int, err error) {
	if r.TahunBerdiri == nil {
		return false, nil, nil
	}
	raw := strings.TrimSpace(*r.TahunBerdiri)
	if raw == "" {
		return true, nil, nil
	}
	n, convErr := strconv.Atoi(raw)
	if convErr != nil || n < 0 {
		return false, nil, fiber.NewError(fiber.StatusBadRequest, "tahun_berdiri harus berupa angka tahun")
	}
	return true, &n, nil
}

// ApplyTo menimpa kolom teks pada row. Logo diisi terpisah oleh alur upload.
func (r *UpdateProfileRequest) ApplyTo(m *model.ProfileOrganisasiModel) error {
	set, year, err := r.ParseTahunBerdiri()
	if err != nil {
		return err
	}
	m.NamaOrganisasi = r.NamaOrganisasi
	m.Tagline = r.Tagline
	m.DeskripsiSingkat = r.DeskripsiSingkat
	m.DeskripsiLengkap = r.DeskripsiLengkap
	m.BidangUsaha = r.BidangUsaha
	if set {
		m.TahunBerdiri = year
	}
	return nil
}
