package engine

import (
	"strings"

	"thesis-progress-dashboard/app/models"
)

// Pesan yang ditampilkan presentasi saat hasil kosong / belum tersedia.
const (
	MsgNoData       = "Tidak ada data ditemukan."
	MsgNoAdvisors   = "Tidak ada dosen ditemukan."
	MsgNoProdiStats = "Statistik untuk program studi ini belum tersedia."
)

// thesisTrackProdi are the programs with the five-stage skripsi flow;
// everything else on the whitelist follows the three-stage tugas-akhir flow.
var thesisTrackProdi = map[string]bool{
	models.ProdiSI:  true,
	models.ProdiTI:  true,
	models.ProdiTMJ: true,
}

var thesisTrackStatuses = []string{
	models.StatusBelumProposal,
	models.StatusSudahProposal,
	models.StatusSeminarHasil,
	models.StatusPendadaran,
	models.StatusSudahYudisium,
}

var examTrackStatuses = []string{
	models.StatusBelumKomprehensif,
	models.StatusSudahKomprehensif,
	models.StatusSudahYudisium,
}

// chartLabels maps raw status values to the shorter chart labels.
var chartLabels = map[string]string{
	models.StatusSeminarHasil:      "Sudah Semhas",
	models.StatusSudahYudisium:     "Yudisium",
	models.StatusBelumKomprehensif: "Belum Kompre",
	models.StatusSudahKomprehensif: "Sudah Kompre",
}

type cardSpec struct {
	label string
	key   string
}

// advisorCardOrder is the fixed display order of the advisor stat cards.
var advisorCardOrder = []cardSpec{
	{"Total Dibimbing", "total"},
	{models.StatusBelumProposal, models.StatusBelumProposal},
	{models.StatusBelumKomprehensif, models.StatusBelumKomprehensif},
	{models.StatusSudahProposal, models.StatusSudahProposal},
	{models.StatusSeminarHasil, models.StatusSeminarHasil},
	{models.StatusPendadaran, models.StatusPendadaran},
	{models.StatusSudahKomprehensif, models.StatusSudahKomprehensif},
	{models.StatusSudahYudisium, models.StatusSudahYudisium},
}

var thesisCardOrder = []cardSpec{
	{"Jumlah Mahasiswa Skripsi", "total"},
	{models.StatusBelumProposal, models.StatusBelumProposal},
	{"Proposal", models.StatusSudahProposal},
	{models.StatusSeminarHasil, models.StatusSeminarHasil},
	{models.StatusPendadaran, models.StatusPendadaran},
	{"Yudisium", models.StatusSudahYudisium},
}

var examCardOrder = []cardSpec{
	{"Jumlah Mahasiswa Tugas Akhir", "total"},
	{"Belum Komprehensif", models.StatusBelumKomprehensif},
	{"Komprehensif", models.StatusSudahKomprehensif},
	{"Yudisium", models.StatusSudahYudisium},
}

// Coordinator owns the navigation state machine: which view is active,
// its filter values and the pagination cursor. Exactly one view is active
// at a time; Navigate resets state, kecuali masuk ke halaman bimbingan
// dari daftar dosen yang membawa nama dosen terpilih.
type Coordinator struct {
	records []models.StudentRecord
	agg     *Aggregation

	view    View
	filters FilterState
	page    int
}

// NewCoordinator starts on the dashboard with an empty dataset, so every
// view renders consistently before the first load.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		agg:     Aggregate(nil),
		view:    ViewDashboard,
		filters: DefaultFilterState(),
		page:    1,
	}
}

// Reload swaps in a freshly loaded dataset and its aggregation. Filter
// state and the page cursor reset; only the selected advisor survives.
func (c *Coordinator) Reload(records []models.StudentRecord, agg *Aggregation) {
	c.records = records
	c.agg = agg
	advisor := c.filters.Advisor
	c.filters = DefaultFilterState()
	c.filters.Advisor = advisor
	c.page = 1
}

// Navigate activates a view with clean filter state and page cursor.
func (c *Coordinator) Navigate(v View) {
	c.view = v
	c.filters = DefaultFilterState()
	c.page = 1
}

// OpenAdvisorDetail is the advisor-list → advisor-detail transition: the
// selected advisor carries forward, everything else starts clean.
func (c *Coordinator) OpenAdvisorDetail(name string) {
	c.Navigate(ViewAdvisorDetail)
	c.filters.Advisor = name
}

// ActiveView reports the currently active view.
func (c *Coordinator) ActiveView() View { return c.view }

// Filters returns the active filter state.
func (c *Coordinator) Filters() FilterState { return c.filters }

// Setiap perubahan filter mengembalikan kursor ke halaman 1.

func (c *Coordinator) SetKeyword(keyword string) {
	c.filters.Keyword = keyword
	c.page = 1
}

func (c *Coordinator) SetStatus(status string) {
	if status == "" {
		status = FilterAll
	}
	c.filters.Status = status
	c.page = 1
}

func (c *Coordinator) SetProdi(prodi string) {
	if prodi == "" {
		prodi = FilterAll
	}
	c.filters.Prodi = prodi
	c.page = 1
}

// SetPage moves the cursor; the next render clamps it into range.
func (c *Coordinator) SetPage(page int) { c.page = page }

// NextPage and PrevPage move the cursor by one; clamping happens on render.

func (c *Coordinator) NextPage() { c.page++ }

func (c *Coordinator) PrevPage() { c.page-- }

// Dashboard renders the overview cards and the program summary table over
// the full dataset. The grand-total card is always reported as 100%.
func (c *Coordinator) Dashboard() models.DashboardView {
	total := len(c.records)
	cards := make([]models.StatCard, 0, len(models.FixedProdi)+1)
	cards = append(cards, models.StatCard{
		Label:      "Total Mahasiswa Skripsi/TA",
		Key:        "total",
		Value:      total,
		Percentage: "100",
	})
	for _, prodi := range models.FixedProdi {
		count := 0
		if row, ok := c.agg.ProgramStats[prodi]; ok {
			count = row.Total
		}
		cards = append(cards, models.StatCard{
			Label:      prodi,
			Key:        prodi,
			Value:      count,
			Percentage: models.FormatPercent(count, total),
		})
	}
	// Tabel ringkas di dashboard hanya menampilkan halaman pertama.
	preview := Paginate(c.records, PreviewPageSize, 1)

	return models.DashboardView{
		Total:   total,
		Cards:   cards,
		Summary: ProgramSummaryRows(c.agg),
		Recent:  rosterRows(preview),
	}
}

// Roster renders the filterable student list with detail-size pages.
func (c *Coordinator) Roster() models.RosterView {
	filtered := Filter(c.records, ViewRoster, c.filters)
	page := Paginate(filtered, DetailPageSize, c.page)
	c.page = page.Number

	view := models.RosterView{
		Rows:       rosterRows(page),
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	if page.TotalItems == 0 {
		view.Message = MsgNoData
	}
	return view
}

// AdvisorList renders every unique advisor name, keyword-filtered, each
// annotated with its supervision total (0 when the advisor never counts).
func (c *Coordinator) AdvisorList() models.AdvisorListView {
	keyword := strings.ToLower(c.filters.Keyword)
	entries := make([]models.AdvisorListEntry, 0, len(c.agg.AdvisorNames))
	for _, name := range c.agg.AdvisorNames {
		if keyword != "" && !strings.Contains(strings.ToLower(name), keyword) {
			continue
		}
		total := 0
		if row, ok := c.agg.AdvisorStats[name]; ok {
			total = row.Total
		}
		entries = append(entries, models.AdvisorListEntry{Name: name, Total: total})
	}
	view := models.AdvisorListView{Advisors: entries}
	if len(entries) == 0 {
		view.Message = MsgNoAdvisors
	}
	return view
}

// AdvisorDetail renders the selected advisor's stat cards plus the
// paginated roster of their advisees.
func (c *Coordinator) AdvisorDetail() models.AdvisorDetailView {
	filtered := Filter(c.records, ViewAdvisorDetail, c.filters)
	page := Paginate(filtered, DetailPageSize, c.page)
	c.page = page.Number

	stats := c.agg.AdvisorStats[c.filters.Advisor]
	if stats == nil {
		stats = models.NewStatRow()
	}
	cards := make([]models.StatCard, 0, len(advisorCardOrder))
	for _, spec := range advisorCardOrder {
		value := stats.Count(spec.key)
		cards = append(cards, models.StatCard{
			Label:      spec.label,
			Key:        spec.key,
			Value:      value,
			Percentage: models.FormatPercent(value, stats.Total),
		})
	}

	view := models.AdvisorDetailView{
		Advisor:    c.filters.Advisor,
		Cards:      cards,
		Rows:       rosterRows(page),
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
	}
	if page.TotalItems == 0 {
		view.Message = MsgNoData
	}
	return view
}

// ProgramStatistics renders the breakdown for one program studi. Prodi
// dengan alur skripsi dapat lima tahap, Komputerisasi Akuntansi dapat
// tiga tahap, di luar itu statistik belum tersedia.
func (c *Coordinator) ProgramStatistics(prodi string) models.ProgramStatsView {
	var order []cardSpec
	switch {
	case thesisTrackProdi[prodi]:
		order = thesisCardOrder
	case prodi == models.ProdiKA:
		order = examCardOrder
	default:
		return models.ProgramStatsView{ProgramStudy: prodi, Message: MsgNoProdiStats}
	}

	stats := c.agg.ProgramStats[prodi]
	if stats == nil {
		stats = models.NewStatRow()
	}
	cards := make([]models.StatCard, 0, len(order))
	for _, spec := range order {
		value := stats.Count(spec.key)
		cards = append(cards, models.StatCard{
			Label:      spec.label,
			Key:        spec.key,
			Value:      value,
			Percentage: models.FormatPercent(value, stats.Total),
		})
	}
	return models.ProgramStatsView{ProgramStudy: prodi, Available: true, Cards: cards}
}

// Analytics renders the full-dataset chart data: the program-of-study
// distribution and, per program, the status distribution restricted to
// that program's applicable statuses.
func (c *Coordinator) Analytics() models.AnalyticsView {
	dist := make([]models.ChartDataItem, 0, len(c.agg.ProgramOrder))
	for _, prodi := range c.agg.ProgramOrder {
		dist = append(dist, models.ChartDataItem{Name: prodi, Value: c.agg.ProgramStats[prodi].Total})
	}

	progress := make([]models.ProgramProgress, 0, len(models.FixedProdi))
	for _, prodi := range models.FixedProdi {
		statuses := thesisTrackStatuses
		if !thesisTrackProdi[prodi] {
			statuses = examTrackStatuses
		}
		stats := c.agg.ProgramStats[prodi]
		items := make([]models.ChartDataItem, 0, len(statuses))
		for _, status := range statuses {
			value := 0
			if stats != nil {
				value = stats.ByStatus[status]
			}
			label := status
			if short, ok := chartLabels[status]; ok {
				label = short
			}
			items = append(items, models.ChartDataItem{Name: label, Value: value})
		}
		progress = append(progress, models.ProgramProgress{
			ProgramStudy: prodi,
			Title:        "Program Studi - " + prodi,
			Items:        items,
		})
	}

	return models.AnalyticsView{ProgramDistribution: dist, ProgressByProgram: progress}
}

// rosterRows converts one page of records into display rows, substituting
// the '-' placeholder and numbering rows from the page offset.
func rosterRows(page Page) []models.RosterRow {
	rows := make([]models.RosterRow, 0, len(page.Items))
	for i, rec := range page.Items {
		rows = append(rows, models.RosterRow{
			No:           page.Start + i + 1,
			NIM:          models.Display(string(rec.NIM)),
			Name:         models.Display(rec.Name),
			ProgramStudy: models.Display(rec.Prodi),
			ThesisTitle:  models.Display(rec.ThesisTitle),
			Advisor1:     models.Display(rec.Advisor1),
			Advisor2:     models.Display(rec.Advisor2),
			Reviewer:     models.Display(rec.Reviewer),
			Status:       models.Display(rec.Status),
		})
	}
	return rows
}
