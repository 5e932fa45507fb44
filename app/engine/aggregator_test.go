package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thesis-progress-dashboard/app/engine"
	"thesis-progress-dashboard/app/models"
)

// --- FIXTURES ---

func specRecords() []models.StudentRecord {
	return []models.StudentRecord{
		{NIM: "101", Name: "Budi Santoso", Prodi: models.ProdiSI, Status: models.StatusSudahProposal, Advisor1: "Dr. A"},
		{NIM: "102", Name: "Siti Aminah", Prodi: models.ProdiSI, Status: models.StatusPendadaran, Advisor1: "Dr. A", Advisor2: "Dr. B"},
		{NIM: "103", Name: "Rudi Hartono", Prodi: models.ProdiTI, Status: models.StatusBelumProposal, Advisor1: "Dr. B"},
	}
}

func mixedRecords() []models.StudentRecord {
	return append(specRecords(),
		// Tanpa pembimbing: masuk statistik prodi saja.
		models.StudentRecord{NIM: "104", Name: "Dewi Lestari", Prodi: models.ProdiKA, Status: models.StatusSudahKomprehensif},
		// Tanpa prodi dan tanpa status: dua-duanya jatuh ke Other.
		models.StudentRecord{NIM: "105", Name: "Andi Wijaya", Advisor1: "Dr. C"},
		// Status di luar himpunan.
		models.StudentRecord{NIM: "106", Name: "Rina Puspita", Prodi: models.ProdiTMJ, Status: "Cuti", Advisor1: "Dr. A"},
		// Pembimbing 1 dan 2 orang yang sama.
		models.StudentRecord{NIM: "107", Name: "Joko Susilo", Prodi: models.ProdiTI, Status: models.StatusSeminarHasil, Advisor1: "Dr. B", Advisor2: "Dr. B"},
	)
}

// --- TEST CASES ---

func TestAggregateExampleDataset(t *testing.T) {
	agg := engine.Aggregate(specRecords())

	assert.Equal(t, 2, agg.AdvisorStats["Dr. A"].Total)
	assert.Equal(t, 2, agg.AdvisorStats["Dr. B"].Total)
	assert.Equal(t, 2, agg.ProgramStats[models.ProdiSI].Total)
	assert.Equal(t, 1, agg.ProgramStats[models.ProdiTI].Total)
	assert.Equal(t, []string{"Dr. A", "Dr. B"}, agg.AdvisorNames)

	assert.Equal(t, 1, agg.AdvisorStats["Dr. A"].ByStatus[models.StatusSudahProposal])
	assert.Equal(t, 1, agg.AdvisorStats["Dr. A"].ByStatus[models.StatusPendadaran])
	assert.Equal(t, 1, agg.AdvisorStats["Dr. B"].ByStatus[models.StatusBelumProposal])
}

func TestAggregateProgramTotalsSumToRecordCount(t *testing.T) {
	records := mixedRecords()
	agg := engine.Aggregate(records)

	sum := 0
	for _, row := range agg.ProgramStats {
		sum += row.Total
	}
	assert.Equal(t, len(records), sum)
}

func TestAggregateTotalEqualsSumOfStatusCounters(t *testing.T) {
	agg := engine.Aggregate(mixedRecords())

	for name, row := range agg.AdvisorStats {
		sum := 0
		for _, n := range row.ByStatus {
			sum += n
		}
		assert.Equal(t, row.Total, sum, "advisor %s", name)
	}
	for prodi, row := range agg.ProgramStats {
		sum := 0
		for _, n := range row.ByStatus {
			sum += n
		}
		assert.Equal(t, row.Total, sum, "prodi %s", prodi)
	}
}

func TestAggregateRecordWithoutAdvisors(t *testing.T) {
	agg := engine.Aggregate(mixedRecords())

	// Dewi (KA, tanpa pembimbing) terhitung di prodi tapi tidak menambah
	// statistik dosen mana pun.
	assert.Equal(t, 1, agg.ProgramStats[models.ProdiKA].Total)
	advisorSum := 0
	for _, row := range agg.AdvisorStats {
		advisorSum += row.Total
	}
	// 7 record: 1 tanpa pembimbing (0), 1 dengan dua pembimbing beda (2),
	// 1 dengan pembimbing kembar (1), sisanya masing-masing 1.
	assert.Equal(t, 7, advisorSum)
}

func TestAggregateDuplicateSupervisorCountedOnce(t *testing.T) {
	records := []models.StudentRecord{
		{NIM: "201", Name: "Tono", Prodi: models.ProdiTI, Status: models.StatusSeminarHasil, Advisor1: "Dr. B", Advisor2: "Dr. B"},
	}
	agg := engine.Aggregate(records)

	assert.Equal(t, 1, agg.AdvisorStats["Dr. B"].Total)
	assert.Equal(t, []string{"Dr. B"}, agg.AdvisorNames)
}

func TestAggregateMissingAndUnknownStatusFallToOther(t *testing.T) {
	agg := engine.Aggregate(mixedRecords())

	assert.Equal(t, 1, agg.ProgramStats[models.ProdiOther].ByStatus[models.StatusOther]) // tanpa status
	assert.Equal(t, 1, agg.ProgramStats[models.ProdiTMJ].ByStatus[models.StatusOther])   // status "Cuti"
	assert.Equal(t, 1, agg.AdvisorStats["Dr. C"].ByStatus[models.StatusOther])
}

func TestAggregateIdempotent(t *testing.T) {
	records := mixedRecords()

	first := engine.Aggregate(records)
	second := engine.Aggregate(records)

	assert.Equal(t, first.AdvisorStats, second.AdvisorStats)
	assert.Equal(t, first.ProgramStats, second.ProgramStats)
	assert.Equal(t, first.AdvisorNames, second.AdvisorNames)
}

func TestAggregateEmptyDataset(t *testing.T) {
	agg := engine.Aggregate(nil)

	assert.Empty(t, agg.AdvisorStats)
	assert.Empty(t, agg.ProgramStats)
	assert.Empty(t, agg.AdvisorNames)
	assert.Empty(t, engine.ProgramSummaryRows(agg))
}

func TestProgramSummaryRowsSortedWithStableTieBreak(t *testing.T) {
	records := []models.StudentRecord{
		{NIM: "1", Prodi: models.ProdiTI, Status: models.StatusBelumProposal},
		{NIM: "2", Prodi: models.ProdiSI, Status: models.StatusSudahProposal},
		{NIM: "3", Prodi: models.ProdiKA, Status: models.StatusSudahYudisium},
		{NIM: "4", Prodi: models.ProdiKA, Status: models.StatusBelumKomprehensif},
	}
	rows := engine.ProgramSummaryRows(engine.Aggregate(records))

	assert.Equal(t, models.ProdiKA, rows[0].ProgramStudy)
	// TI dan SI sama-sama 1; TI ditemukan lebih dulu jadi tetap di depan.
	assert.Equal(t, models.ProdiTI, rows[1].ProgramStudy)
	assert.Equal(t, models.ProdiSI, rows[2].ProgramStudy)
	assert.Equal(t, 1, rows[0].StatusCounts[models.StatusSudahYudisium])
	assert.Len(t, rows[0].StatusCounts, len(models.EnumeratedStatuses))
}
