package model

// KajianRecord adalah satu baris jadwal kajian di sheet.
// Tidak ada ID; posisi di list adalah satu-satunya alamat.
type KajianRecord struct {
	Nama   string `json:"Nama"`
	Tempat string `json:"Tempat"`
	Waktu  string `json:"Waktu"` // teks bebas, mis. "Senin, 21 Sep 2024, 19:30 WITA"
}

// DraftField menunjuk salah satu kolom draft form.
type DraftField string

const (
	FieldNama   DraftField = "Nama"
	FieldTempat DraftField = "Tempat"
	FieldWaktu  DraftField = "Waktu"
)

// Valid true kalau field dikenal.
func (f DraftField) Valid() bool {
	switch f {
	case FieldNama, FieldTempat, FieldWaktu:
		return true
	}
	return false
}

// KajianDraft adalah isian form yang belum dikirim.
type KajianDraft struct {
	Nama   string
	Tempat string
	Waktu  string
}

// ToRecord membentuk kandidat record dari draft (tanpa trim).
func (d KajianDraft) ToRecord() KajianRecord {
	return KajianRecord{Nama: d.Nama, Tempat: d.Tempat, Waktu: d.Waktu}
}
