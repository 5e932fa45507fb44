package repository

import (
	"context"

	"thesis-progress-dashboard/app/models"
)

// RecordSource supplies the raw student dataset. Implementations are
// read-only; the dashboard never writes back to its source.
type RecordSource interface {
	Fetch(ctx context.Context) ([]models.StudentRecord, error)
}
