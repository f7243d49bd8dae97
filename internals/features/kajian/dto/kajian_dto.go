package dto

import (
	"kajianku_backend/internals/features/kajian/model"
	helper "kajianku_backend/internals/helpers"
)

// Request dari form HTML / JSON → backend.
// Hanya cek keberadaan field; isi tidak di-trim atau dinormalisasi.
type CreateKajianRequest struct {
	Nama   string `json:"Nama" form:"Nama" validate:"required"`
	Tempat string `json:"Tempat" form:"Tempat" validate:"required"`
	Waktu  string `json:"Waktu" form:"Waktu" validate:"required"`
}

func (r CreateKajianRequest) Validate() error {
	return helper.Validator().Struct(r)
}

func (r CreateKajianRequest) ToModel() model.KajianRecord {
	return model.KajianRecord{Nama: r.Nama, Tempat: r.Tempat, Waktu: r.Waktu}
}

// Response ke frontend (record + link peta).
type KajianResponse struct {
	Nama    string `json:"Nama"`
	Tempat  string `json:"Tempat"`
	Waktu   string `json:"Waktu"`
	MapsURL string `json:"maps_url"`
}

func ToKajianResponse(m model.KajianRecord, mapsBase string) KajianResponse {
	return KajianResponse{
		Nama:    m.Nama,
		Tempat:  m.Tempat,
		Waktu:   m.Waktu,
		MapsURL: helper.MapsSearchURL(mapsBase, m.Tempat),
	}
}

func ToKajianResponses(list []model.KajianRecord, mapsBase string) []KajianResponse {
	out := make([]KajianResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToKajianResponse(m, mapsBase))
	}
	return out
}
