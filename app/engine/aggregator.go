package engine

import (
	"sort"

	"thesis-progress-dashboard/app/models"
)

// Aggregation is the full derived-statistics output for one dataset.
// ProgramOrder keeps the discovery order of program buckets; the summary
// table uses it as the stable tie-break when totals are equal.
type Aggregation struct {
	AdvisorStats map[string]*models.StatRow
	ProgramStats map[string]*models.StatRow
	AdvisorNames []string
	ProgramOrder []string
}

// Aggregate derives advisor and program statistics from the raw records
// in a single pass.
//
// Catatan: daftar nama dosen memasukkan pembimbing 2 walaupun sama dengan
// pembimbing 1, sedangkan penghitungan statistik mengecualikan duplikat
// itu. Perilaku ini dipertahankan apa adanya dari sumber aslinya.
func Aggregate(records []models.StudentRecord) *Aggregation {
	agg := &Aggregation{
		AdvisorStats: make(map[string]*models.StatRow),
		ProgramStats: make(map[string]*models.StatRow),
	}
	nameSet := make(map[string]struct{})

	for _, rec := range records {
		status := rec.Status
		if status == "" {
			status = models.StatusOther
		}
		prodi := rec.Prodi
		if prodi == "" {
			prodi = models.ProdiOther
		}

		// Hitung statistik dosen pembimbing. Satu record dihitung sekali
		// per dosen, walaupun dosen itu jadi pembimbing 1 dan 2 sekaligus.
		var relevant []string
		if rec.Advisor1 != "" {
			relevant = append(relevant, rec.Advisor1)
		}
		if rec.Advisor2 != "" && rec.Advisor2 != rec.Advisor1 {
			relevant = append(relevant, rec.Advisor2)
		}
		for _, name := range relevant {
			row := agg.AdvisorStats[name]
			if row == nil {
				row = models.NewStatRow()
				agg.AdvisorStats[name] = row
			}
			row.Add(status)
		}

		if rec.Advisor1 != "" {
			nameSet[rec.Advisor1] = struct{}{}
		}
		if rec.Advisor2 != "" {
			nameSet[rec.Advisor2] = struct{}{}
		}

		// Hitung statistik program studi.
		row := agg.ProgramStats[prodi]
		if row == nil {
			row = models.NewStatRow()
			agg.ProgramStats[prodi] = row
			agg.ProgramOrder = append(agg.ProgramOrder, prodi)
		}
		row.Add(status)
	}

	agg.AdvisorNames = make([]string, 0, len(nameSet))
	for name := range nameSet {
		agg.AdvisorNames = append(agg.AdvisorNames, name)
	}
	sort.Strings(agg.AdvisorNames)

	return agg
}

// ProgramSummaryRows flattens ProgramStats into summary-table rows sorted
// by total descending, keeping discovery order for equal totals.
func ProgramSummaryRows(agg *Aggregation) []models.ProgramSummaryRow {
	rows := make([]models.ProgramSummaryRow, 0, len(agg.ProgramOrder))
	for _, prodi := range agg.ProgramOrder {
		stat := agg.ProgramStats[prodi]
		counts := make(map[string]int, len(models.EnumeratedStatuses))
		for _, s := range models.EnumeratedStatuses {
			counts[s] = stat.ByStatus[s]
		}
		rows = append(rows, models.ProgramSummaryRow{
			ProgramStudy: prodi,
			Total:        stat.Total,
			StatusCounts: counts,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}
