package engine

import (
	"strings"

	"thesis-progress-dashboard/app/models"
)

// View identifies the screen currently driving filtering and rendering.
type View int

const (
	ViewDashboard View = iota
	ViewRoster
	ViewAdvisorList
	ViewAdvisorDetail
	ViewProgramStats
	ViewAnalytics
)

// FilterAll is the "no constraint" value for the status and prodi selects.
const FilterAll = "all"

// FilterState holds the active filter values of one view.
type FilterState struct {
	Keyword string
	Status  string
	Prodi   string
	Advisor string
}

// DefaultFilterState returns the clean state a view starts with.
func DefaultFilterState() FilterState {
	return FilterState{Status: FilterAll, Prodi: FilterAll}
}

// Filter returns the subset of records relevant to the given view. It is
// a pure function of its arguments. Aggregate views (dashboard, advisor
// list, program statistics, analytics) pass the full dataset through.
func Filter(records []models.StudentRecord, view View, fs FilterState) []models.StudentRecord {
	switch view {
	case ViewRoster:
		out := make([]models.StudentRecord, 0, len(records))
		keyword := strings.ToLower(fs.Keyword)
		for _, rec := range records {
			if matchKeyword(rec, keyword) && matchSelect(rec.Status, fs.Status) && matchSelect(rec.Prodi, fs.Prodi) {
				out = append(out, rec)
			}
		}
		return out
	case ViewAdvisorDetail:
		// Tanpa dosen terpilih, halaman bimbingan tidak punya hasil.
		if fs.Advisor == "" {
			return nil
		}
		out := make([]models.StudentRecord, 0, len(records))
		keyword := strings.ToLower(fs.Keyword)
		for _, rec := range records {
			supervised := rec.Advisor1 == fs.Advisor || rec.Advisor2 == fs.Advisor
			if supervised && matchKeyword(rec, keyword) && matchSelect(rec.Status, fs.Status) {
				out = append(out, rec)
			}
		}
		return out
	default:
		return records
	}
}

// matchKeyword does a case-insensitive substring match against name and
// NIM. An empty keyword matches everything.
func matchKeyword(rec models.StudentRecord, keyword string) bool {
	if keyword == "" {
		return true
	}
	if rec.Name != "" && strings.Contains(strings.ToLower(rec.Name), keyword) {
		return true
	}
	return rec.NIM != "" && strings.Contains(strings.ToLower(string(rec.NIM)), keyword)
}

// matchSelect applies a select-control constraint: "all" passes, anything
// else is exact, case-sensitive equality.
func matchSelect(value, selected string) bool {
	return selected == FilterAll || value == selected
}
