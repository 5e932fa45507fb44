package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"

	"thesis-progress-dashboard/app/engine"
	"thesis-progress-dashboard/app/repository"
	"thesis-progress-dashboard/app/store"
)

// DashboardService exposes the coordinator's views over HTTP. Mutex-nya
// menyerialisasi handler, jadi tepat satu handler yang memutasi state
// navigasi pada satu waktu.
type DashboardService struct {
	mu     sync.Mutex
	source repository.RecordSource
	store  *store.Store
	coord  *engine.Coordinator
}

func NewDashboardService(source repository.RecordSource, st *store.Store) *DashboardService {
	return &DashboardService{
		source: source,
		store:  st,
		coord:  engine.NewCoordinator(),
	}
}

// LoadData runs the full load path: fetch, replace the snapshot, rebuild
// the coordinator. On any fetch error the previous snapshot stays as-is.
func (s *DashboardService) LoadData(ctx context.Context) error {
	records, err := s.source.Fetch(ctx)
	if err != nil {
		return err
	}
	snap := s.store.Replace(records)

	s.mu.Lock()
	s.coord.Reload(snap.Records, snap.Stats)
	s.mu.Unlock()
	return nil
}

// Refresh re-runs the load path on demand (tombol refresh di dashboard).
func (s *DashboardService) Refresh(c *fiber.Ctx) error {
	if err := s.LoadData(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Gagal memuat data: %v. Pastikan URL sumber data benar dan dapat diakses.", err),
		})
	}

	snap := s.store.Snapshot()
	message := "Data berhasil dimuat."
	if len(snap.Records) == 0 {
		// Array kosong tetap sukses, cuma perlu pesan info.
		message = "Tidak ada data yang ditemukan."
	}
	return c.JSON(fiber.Map{
		"message":    message,
		"total":      len(snap.Records),
		"snapshotId": snap.ID,
		"loadedAt":   snap.LoadedAt,
	})
}

// GetDashboard returns the overview cards, summary table and preview rows.
func (s *DashboardService) GetDashboard(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.Navigate(engine.ViewDashboard)
	return c.JSON(s.coord.Dashboard())
}

// GetStudents returns one page of the filterable roster.
// Query: keyword, status, prodi, page.
func (s *DashboardService) GetStudents(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.Navigate(engine.ViewRoster)
	s.coord.SetKeyword(c.Query("keyword"))
	s.coord.SetStatus(c.Query("status", engine.FilterAll))
	s.coord.SetProdi(c.Query("prodi", engine.FilterAll))
	s.coord.SetPage(c.QueryInt("page", 1))
	return c.JSON(s.coord.Roster())
}

// GetAdvisors returns the unique advisor names with supervision totals.
func (s *DashboardService) GetAdvisors(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.Navigate(engine.ViewAdvisorList)
	s.coord.SetKeyword(c.Query("keyword"))
	return c.JSON(s.coord.AdvisorList())
}

// GetAdvisorDetail returns one advisor's stat cards and advisee roster.
// Query: name (wajib), keyword, status, page.
func (s *DashboardService) GetAdvisorDetail(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.OpenAdvisorDetail(name)
	s.coord.SetKeyword(c.Query("keyword"))
	s.coord.SetStatus(c.Query("status", engine.FilterAll))
	s.coord.SetPage(c.QueryInt("page", 1))
	return c.JSON(s.coord.AdvisorDetail())
}

// GetProgramStatistics returns the per-prodi breakdown. Query: prodi (wajib).
func (s *DashboardService) GetProgramStatistics(c *fiber.Ctx) error {
	prodi := c.Query("prodi")
	if prodi == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "prodi is required"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.Navigate(engine.ViewProgramStats)
	return c.JSON(s.coord.ProgramStatistics(prodi))
}

// GetAnalytics returns the chart distributions over the full dataset.
func (s *DashboardService) GetAnalytics(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.Navigate(engine.ViewAnalytics)
	return c.JSON(s.coord.Analytics())
}
