package service

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/montanaflynn/stats"
	"github.com/xuri/excelize/v2"

	"thesis-progress-dashboard/app/engine"
	"thesis-progress-dashboard/app/models"
	"thesis-progress-dashboard/app/store"
)

// ReportService serves the downloadable report and the supervision-load
// summary. It only reads snapshots, so it needs no lock of its own.
type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// GetSummary returns mean/median/max advisee counts across advisors plus
// the five most loaded advisors.
func (s *ReportService) GetSummary(c *fiber.Ctx) error {
	snap := s.store.Snapshot()
	agg := snap.Stats

	loads := make([]models.AdvisorLoad, 0, len(agg.AdvisorNames))
	totals := make([]float64, 0, len(agg.AdvisorNames))
	for _, name := range agg.AdvisorNames {
		total := 0
		if row, ok := agg.AdvisorStats[name]; ok {
			total = row.Total
		}
		loads = append(loads, models.AdvisorLoad{Name: name, Total: total})
		totals = append(totals, float64(total))
	}

	summary := models.SupervisionSummary{
		TotalStudents: len(snap.Records),
		TotalAdvisors: len(agg.AdvisorNames),
		TopAdvisors:   []models.AdvisorLoad{},
	}

	if len(totals) > 0 {
		mean, err := stats.Mean(totals)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		median, err := stats.Median(totals)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		max, err := stats.Max(totals)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		summary.MeanAdvisees, _ = stats.Round(mean, 2)
		summary.MedianAdvisees = median
		summary.MaxAdvisees = max

		// loads sudah terurut nama; sort stabil menjaga urutan itu
		// sebagai tie-break.
		sort.SliceStable(loads, func(i, j int) bool { return loads[i].Total > loads[j].Total })
		top := 5
		if len(loads) < top {
			top = len(loads)
		}
		summary.TopAdvisors = loads[:top]
	}

	return c.JSON(summary)
}

// ExportWorkbook writes the program summary table and the full roster to
// an XLSX workbook and sends it as an attachment.
func (s *ReportService) ExportWorkbook(c *fiber.Ctx) error {
	snap := s.store.Snapshot()

	f := excelize.NewFile()
	defer f.Close()

	const statsSheet = "Statistik Prodi"
	f.SetSheetName("Sheet1", statsSheet)

	statsHeader := append([]string{"No", "Program Studi", "Jumlah"}, models.EnumeratedStatuses...)
	if err := writeRow(f, statsSheet, 1, toCells(statsHeader)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for i, row := range engine.ProgramSummaryRows(snap.Stats) {
		cells := []interface{}{i + 1, row.ProgramStudy, row.Total}
		for _, status := range models.EnumeratedStatuses {
			cells = append(cells, row.StatusCounts[status])
		}
		if err := writeRow(f, statsSheet, i+2, cells); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	const rosterSheet = "Data Mahasiswa"
	if _, err := f.NewSheet(rosterSheet); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	rosterHeader := []string{"No", "NIM", "NAMA", "Program Studi", "Judul Skripsi/TA", "Pembimbing 1", "Pembimbing 2", "Penelaah", "Status"}
	if err := writeRow(f, rosterSheet, 1, toCells(rosterHeader)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	for i, rec := range snap.Records {
		cells := []interface{}{
			i + 1,
			models.Display(string(rec.NIM)),
			models.Display(rec.Name),
			models.Display(rec.Prodi),
			models.Display(rec.ThesisTitle),
			models.Display(rec.Advisor1),
			models.Display(rec.Advisor2),
			models.Display(rec.Reviewer),
			models.Display(rec.Status),
		}
		if err := writeRow(f, rosterSheet, i+2, cells); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="laporan-skripsi-ta.xlsx"`)
	return c.Send(buf.Bytes())
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
