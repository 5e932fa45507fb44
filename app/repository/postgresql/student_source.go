package repository

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"thesis-progress-dashboard/app/models"
)

// StudentSource reads the thesis_students table as a record source.
// Semua kolom selain nim boleh NULL; nilai kosong nanti jatuh ke bucket
// default saat agregasi.
type StudentSource struct {
	db *sql.DB
}

func NewStudentSource(db *sql.DB) *StudentSource {
	return &StudentSource{db: db}
}

func (r *StudentSource) Fetch(ctx context.Context) ([]models.StudentRecord, error) {
	query := `
        SELECT nim, nama, program_studi, judul_skripsi, pembimbing1, pembimbing2, penelaah, status
        FROM thesis_students
        ORDER BY nim
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.StudentRecord{}
	for rows.Next() {
		var nim string
		var nama, prodi, judul, p1, p2, penelaah, status sql.NullString
		if err := rows.Scan(&nim, &nama, &prodi, &judul, &p1, &p2, &penelaah, &status); err != nil {
			return nil, err
		}
		records = append(records, models.StudentRecord{
			NIM:         models.FlexString(nim),
			Name:        nama.String,
			Prodi:       prodi.String,
			ThesisTitle: judul.String,
			Advisor1:    p1.String,
			Advisor2:    p2.String,
			Reviewer:    penelaah.String,
			Status:      status.String,
		})
	}
	return records, rows.Err()
}
