package dto

import "strings"

// MisiItemRequest: id & urutan dari client diterima tapi diabaikan,
// urutan selalu mengikuti posisi di list.
type MisiItemRequest struct {
	ID       *uint  `json:"id,omitempty"`
	Urutan   *int   `json:"urutan,omitempty"`
	TeksMisi string `json:"teks_misi" validate:"required"`
}

type UpdateVisiMisiRequest struct {
	Visi     string            `json:"visi" validate:"required"`
	MisiList []MisiItemRequest `json:"misi_list" validate:"required,min=1,dive"`
}

func (r *UpdateVisiMisiRequest) Normalize() {
	r.Visi = strings.TrimSpace(r.Visi)
	for i := range r.MisiList {
		r.MisiList[i].TeksMisi = strings.TrimSpace(r.MisiList[i].TeksMisi)
	}
}

func (r *UpdateVisiMisiRequest) Texts() []string {
	out := make([]string, len(r.MisiList))
	for i, m := range r.MisiList {
		out[i] = m.TeksMisi
	}
	return out
}
