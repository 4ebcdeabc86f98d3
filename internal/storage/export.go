package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportData is the full JSON dump of one run.
type ExportData struct {
	Meta  RunMetadata `json:"meta"`
	Times []float64   `json:"times"`
	X     [][]float64 `json:"x"` // per marble
	Y     [][]float64 `json:"y"`
}

func (s *Store) exportData(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	times, xs, ys, err := s.LoadTrajectory(runID)
	if err != nil {
		return nil, err
	}
	return &ExportData{Meta: *meta, Times: times, X: xs, Y: ys}, nil
}

// ExportJSON writes a run's full dump to w.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	data, err := s.exportData(runID)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV copies a run's trajectory CSV to w.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	f, err := os.Open(s.trajectoryPath(runID))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
