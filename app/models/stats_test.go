package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"thesis-progress-dashboard/app/models"
)

func TestStatRowAdd(t *testing.T) {
	row := models.NewStatRow()
	row.Add(models.StatusSudahProposal)
	row.Add(models.StatusSudahProposal)
	row.Add("Cuti") // di luar himpunan → Other

	assert.Equal(t, 3, row.Total)
	assert.Equal(t, 2, row.ByStatus[models.StatusSudahProposal])
	assert.Equal(t, 1, row.ByStatus[models.StatusOther])
	assert.Equal(t, 3, row.Count("total"))
	assert.Equal(t, 2, row.Count(models.StatusSudahProposal))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "66.7", models.FormatPercent(2, 3))
	assert.Equal(t, "33.3", models.FormatPercent(1, 3))
	assert.Equal(t, "100.0", models.FormatPercent(5, 5))
	assert.Equal(t, "0.0", models.FormatPercent(0, 7))
	assert.Equal(t, "0", models.FormatPercent(0, 0))
}

func TestFlexStringAcceptsStringAndNumber(t *testing.T) {
	var rec models.StudentRecord

	assert.NoError(t, json.Unmarshal([]byte(`{"NIM":12345}`), &rec))
	assert.Equal(t, "12345", string(rec.NIM))

	assert.NoError(t, json.Unmarshal([]byte(`{"NIM":"A101"}`), &rec))
	assert.Equal(t, "A101", string(rec.NIM))

	assert.NoError(t, json.Unmarshal([]byte(`{"NIM":null}`), &rec))
	assert.Equal(t, "", string(rec.NIM))
}

func TestDisplayPlaceholder(t *testing.T) {
	assert.Equal(t, "-", models.Display(""))
	assert.Equal(t, "Dr. A", models.Display("Dr. A"))
}
