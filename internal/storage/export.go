package storage

import (
	"encoding/json"
	"io"

	"gonum.org/v1/gonum/mat"
)

type ExportData struct {
	RunMetadata
	Samples [][]float64 `json:"samples"`
}

// ExportJSON writes a run's metadata and samples as one JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	points, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		RunMetadata: *meta,
		Samples:     rows(points),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV copies a run's samples to w.
func (s *Store) ExportCSV(w io.Writer, runID string) error {
	points, err := s.LoadSamples(runID)
	if err != nil {
		return err
	}
	return WriteCSV(w, points)
}

func rows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}
