package models

import "encoding/json"

// Daftar status progres skripsi/TA. Himpunan ini tertutup; status lain
// dihitung ke bucket Other.
const (
	StatusBelumProposal     = "Belum Proposal"
	StatusSudahProposal     = "Sudah Proposal"
	StatusSeminarHasil      = "Seminar Hasil"
	StatusPendadaran        = "Pendadaran"
	StatusBelumKomprehensif = "Belum Ujian Komprehensif"
	StatusSudahKomprehensif = "Sudah Ujian Komprehensif"
	StatusSudahYudisium     = "Sudah Yudisium"
	StatusOther             = "Other"
)

// EnumeratedStatuses is the fixed status set, in summary-table column order.
var EnumeratedStatuses = []string{
	StatusBelumProposal,
	StatusSudahProposal,
	StatusSeminarHasil,
	StatusPendadaran,
	StatusBelumKomprehensif,
	StatusSudahKomprehensif,
	StatusSudahYudisium,
}

// Program studi yang dikenal dashboard.
const (
	ProdiSI    = "Sistem Informasi"
	ProdiTI    = "Teknik Informatika"
	ProdiTMJ   = "Teknik Multimedia dan Jaringan"
	ProdiKA    = "Komputerisasi Akuntansi"
	ProdiOther = "Other"
)

// FixedProdi are the four program-of-study categories shown on the
// dashboard overview cards, in display order.
var FixedProdi = []string{ProdiSI, ProdiTI, ProdiTMJ, ProdiKA}

// FlexString accepts both a JSON string and a JSON number. NIM di sheet
// sumber kadang tersimpan sebagai angka, kadang sebagai teks.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// StudentRecord is one row of the upstream dataset. The JSON tags follow
// the column names of the source sheet exactly, typo included.
type StudentRecord struct {
	NIM         FlexString `json:"NIM"`
	Name        string     `json:"NAMA"`
	Prodi       string     `json:"Program Studi"`
	ThesisTitle string     `json:"Sinposis Skripsi/TA"`
	Advisor1    string     `json:"Usulan Komisi SI (P1)"`
	Advisor2    string     `json:"Usulan Komisi (P2)"`
	Reviewer    string     `json:"Penelaah"`
	Status      string     `json:"Status"`
}

// Display substitutes the '-' placeholder for empty display-only fields.
func Display(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
