package appsscript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"thesis-progress-dashboard/app/models"
)

// Source fetches the dataset from the published Apps Script endpoint.
// Bentuk respons yang dikenali: {"data":[...]} untuk sukses (array kosong
// tetap sukses) atau {"error":"..."} untuk gagal; bentuk lain dianggap
// gagal fetch.
type Source struct {
	url    string
	client *http.Client
}

func NewSource(url string) *Source {
	return &Source{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type payload struct {
	Data  []models.StudentRecord `json:"data"`
	Error string                 `json:"error"`
}

func (s *Source) Fetch(ctx context.Context) ([]models.StudentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from data source", resp.StatusCode)
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("invalid response from data source: %w", err)
	}
	if body.Error != "" {
		return nil, errors.New(body.Error)
	}
	// "data" absen sama sekali berarti bentuk respons tidak dikenali;
	// beda dengan {"data":[]} yang valid dan berarti kosong.
	if body.Data == nil {
		return nil, errors.New("response has neither data nor error field")
	}
	return body.Data, nil
}
