package models

// View models handed to the presentation surface. Semua berupa data
// polos (angka, label, persentase); tidak ada urusan rendering di sini.

// StatCard is one labelled counter card with its share of the total.
type StatCard struct {
	Label      string `json:"label"`
	Key        string `json:"key"`
	Value      int    `json:"value"`
	Percentage string `json:"percentage"`
}

// DashboardView carries the overview cards, the per-prodi summary table
// and a compact preview of the roster.
type DashboardView struct {
	Total   int                 `json:"total"`
	Cards   []StatCard          `json:"cards"`
	Summary []ProgramSummaryRow `json:"summary"`
	Recent  []RosterRow         `json:"recent"`
}

// ProgramSummaryRow is one row of the program-studi statistics table:
// total plus the seven enumerated status counts.
type ProgramSummaryRow struct {
	ProgramStudy string         `json:"programStudy"`
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"statusCounts"`
}

// RosterRow is one detail-table row. Empty fields are already replaced
// with the '-' placeholder.
type RosterRow struct {
	No           int    `json:"no"`
	NIM          string `json:"nim"`
	Name         string `json:"name"`
	ProgramStudy string `json:"programStudy"`
	ThesisTitle  string `json:"thesisTitle"`
	Advisor1     string `json:"advisor1"`
	Advisor2     string `json:"advisor2"`
	Reviewer     string `json:"reviewer"`
	Status       string `json:"status"`
}

// RosterView is a paginated slice of detail rows.
type RosterView struct {
	Rows       []RosterRow `json:"rows"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	TotalItems int         `json:"totalItems"`
	Message    string      `json:"message,omitempty"`
}

// AdvisorListEntry annotates one unique advisor name with its supervision total.
type AdvisorListEntry struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// AdvisorListView lists unique advisor names, optionally keyword-filtered.
type AdvisorListView struct {
	Advisors []AdvisorListEntry `json:"advisors"`
	Message  string             `json:"message,omitempty"`
}

// AdvisorDetailView combines an advisor's stat cards with the paginated
// roster of their advisees.
type AdvisorDetailView struct {
	Advisor    string      `json:"advisor"`
	Cards      []StatCard  `json:"cards"`
	Rows       []RosterRow `json:"rows"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
	TotalItems int         `json:"totalItems"`
	Message    string      `json:"message,omitempty"`
}

// ProgramStatsView is the breakdown for one selected program studi.
// Programs outside the known whitelist come back with Available=false.
type ProgramStatsView struct {
	ProgramStudy string     `json:"programStudy"`
	Available    bool       `json:"available"`
	Cards        []StatCard `json:"cards,omitempty"`
	Message      string     `json:"message,omitempty"`
}

// ChartDataItem is one slice of a distribution chart.
type ChartDataItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// ProgramProgress is the status distribution of one program studi,
// restricted to the statuses applicable to its track.
type ProgramProgress struct {
	ProgramStudy string          `json:"programStudy"`
	Title        string          `json:"title"`
	Items        []ChartDataItem `json:"items"`
}

// AnalyticsView carries the two chart dimensions of the analytics page.
type AnalyticsView struct {
	ProgramDistribution []ChartDataItem   `json:"programDistribution"`
	ProgressByProgram   []ProgramProgress `json:"progressByProgram"`
}
