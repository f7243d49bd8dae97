package service

import (
	"strings"

	"kajianku_backend/internals/features/kajian/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterKajian mengembalikan subsequence dari collection (urutan tetap)
// yang Nama, Tempat, atau Waktu-nya mengandung term (case-insensitive).
// Term kosong → collection apa adanya. Fungsi murni.
func FilterKajian(collection []model.KajianRecord, term string) []model.KajianRecord {
	if term == "" {
		return collection
	}

	// Caser tidak aman dipakai bersama antar goroutine.
	// Lower (bukan Fold): "STRASSE" tidak cocok dengan "Straße".
	lower := cases.Lower(language.Und)
	needle := lower.String(term)

	out := make([]model.KajianRecord, 0, len(collection))
	for _, r := range collection {
		if strings.Contains(lower.String(r.Nama), needle) ||
			strings.Contains(lower.String(r.Tempat), needle) ||
			strings.Contains(lower.String(r.Waktu), needle) {
			out = append(out, r)
		}
	}
	return out
}
