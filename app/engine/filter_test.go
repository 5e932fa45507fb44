package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thesis-progress-dashboard/app/engine"
	"thesis-progress-dashboard/app/models"
)

func TestRosterFilterKeywordMatchesNameAndNIM(t *testing.T) {
	records := specRecords()

	fs := engine.DefaultFilterState()
	fs.Keyword = "BUDI"
	out := engine.Filter(records, engine.ViewRoster, fs)
	assert.Len(t, out, 1)
	assert.Equal(t, "Budi Santoso", out[0].Name)

	fs.Keyword = "10"
	out = engine.Filter(records, engine.ViewRoster, fs)
	assert.Len(t, out, 3) // semua NIM diawali 10

	fs.Keyword = "tidak-ada"
	assert.Empty(t, engine.Filter(records, engine.ViewRoster, fs))
}

func TestRosterFilterIsConjunctive(t *testing.T) {
	records := mixedRecords()

	fs := engine.DefaultFilterState()
	base := engine.Filter(records, engine.ViewRoster, fs)
	assert.Len(t, base, len(records))

	fs.Prodi = models.ProdiSI
	withProdi := engine.Filter(records, engine.ViewRoster, fs)
	assert.LessOrEqual(t, len(withProdi), len(base))

	fs.Status = models.StatusPendadaran
	withStatus := engine.Filter(records, engine.ViewRoster, fs)
	assert.LessOrEqual(t, len(withStatus), len(withProdi))
	assert.Len(t, withStatus, 1)
	assert.Equal(t, "Siti Aminah", withStatus[0].Name)

	fs.Keyword = "zzz"
	assert.Empty(t, engine.Filter(records, engine.ViewRoster, fs))
}

func TestRosterFilterStatusEqualityIsExact(t *testing.T) {
	records := mixedRecords()

	fs := engine.DefaultFilterState()
	fs.Status = "cuti" // beda kapital dengan "Cuti"
	assert.Empty(t, engine.Filter(records, engine.ViewRoster, fs))

	fs.Status = "Cuti"
	assert.Len(t, engine.Filter(records, engine.ViewRoster, fs), 1)
}

func TestAdvisorDetailFilterRequiresSelectedAdvisor(t *testing.T) {
	fs := engine.DefaultFilterState()
	assert.Empty(t, engine.Filter(specRecords(), engine.ViewAdvisorDetail, fs))
}

func TestAdvisorDetailFilterExample(t *testing.T) {
	records := specRecords()

	fs := engine.DefaultFilterState()
	fs.Advisor = "Dr. A"
	assert.Len(t, engine.Filter(records, engine.ViewAdvisorDetail, fs), 2)

	fs.Keyword = "andi"
	assert.Empty(t, engine.Filter(records, engine.ViewAdvisorDetail, fs))
}

func TestAdvisorDetailFilterMatchesEitherSupervisor(t *testing.T) {
	records := specRecords()

	fs := engine.DefaultFilterState()
	fs.Advisor = "Dr. B"
	out := engine.Filter(records, engine.ViewAdvisorDetail, fs)
	assert.Len(t, out, 2) // sekali sebagai P2, sekali sebagai P1

	fs.Status = models.StatusBelumProposal
	out = engine.Filter(records, engine.ViewAdvisorDetail, fs)
	assert.Len(t, out, 1)
	assert.Equal(t, "Rudi Hartono", out[0].Name)
}

func TestAggregateViewsPassThrough(t *testing.T) {
	records := mixedRecords()
	fs := engine.DefaultFilterState()
	fs.Keyword = "diabaikan untuk view agregat"

	for _, view := range []engine.View{engine.ViewDashboard, engine.ViewAdvisorList, engine.ViewProgramStats, engine.ViewAnalytics} {
		assert.Len(t, engine.Filter(records, view, fs), len(records))
	}
}
