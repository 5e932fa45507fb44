package models

import "strconv"

// StatRow is one derived statistics bucket (per dosen pembimbing or per
// program studi): a grand total plus one counter per enumerated status
// and an Other counter.
type StatRow struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// NewStatRow returns a bucket with every status counter initialised to
// zero, so serialised rows always carry the full counter set.
func NewStatRow() *StatRow {
	row := &StatRow{ByStatus: make(map[string]int, len(EnumeratedStatuses)+1)}
	for _, s := range EnumeratedStatuses {
		row.ByStatus[s] = 0
	}
	row.ByStatus[StatusOther] = 0
	return row
}

// Add counts one record with the given status. Status di luar himpunan
// tetap masuk ke Other, tidak pernah ditolak.
func (r *StatRow) Add(status string) {
	r.Total++
	if _, ok := r.ByStatus[status]; ok {
		r.ByStatus[status]++
	} else {
		r.ByStatus[StatusOther]++
	}
}

// Count returns the counter for key, where "total" means the grand total.
func (r *StatRow) Count(key string) int {
	if key == "total" {
		return r.Total
	}
	return r.ByStatus[key]
}

// FormatPercent renders value/total as a percentage with one decimal,
// matching the dashboard cards ("66.7"). A zero total yields "0".
func FormatPercent(value, total int) string {
	if total <= 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(value)/float64(total)*100, 'f', 1, 64)
}
