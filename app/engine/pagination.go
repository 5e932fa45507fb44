package engine

import "thesis-progress-dashboard/app/models"

// Ukuran halaman: tabel detail pakai 15 baris, tabel ringkas di dashboard
// pakai 10 baris. Pemanggil yang memilih, bukan controller-nya.
const (
	PreviewPageSize = 10
	DetailPageSize  = 15
)

// Page is one slice of a filtered result set. Start is the zero-based
// offset of the first item, used for row numbering.
type Page struct {
	Items      []models.StudentRecord
	Number     int
	TotalPages int
	TotalItems int
	Start      int
}

// Paginate slices records into pages of pageSize and clamps the requested
// page into the valid range. An empty set yields page 0 with no items;
// otherwise the returned page always contains at least one item.
func Paginate(records []models.StudentRecord, pageSize, requested int) Page {
	total := len(records)
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	page := requested
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 && totalPages > 0 {
		page = 1
	}
	if totalPages == 0 {
		return Page{Number: 0, TotalPages: 0, TotalItems: total}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{
		Items:      records[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		Start:      start,
	}
}
