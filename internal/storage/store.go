package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/marblekit/marblepath/internal/sim"
)

// Store persists finished runs, one directory per run holding metadata.json
// and trajectory.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Level     string             `json:"level"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Ticks     int                `json:"ticks"`
	Collected int                `json:"collected"`
	Cleared   bool               `json:"cleared"`
	Escaped   int                `json:"escaped"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(level string, cfg sim.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", level, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Level:     level,
		Timestamp: time.Now(),
		Seed:      cfg.Seed,
		Dt:        cfg.Dt,
		Ticks:     result.TicksTaken,
		Collected: result.Collected,
		Cleared:   result.Cleared,
		Escaped:   result.Escaped,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectory.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Frames) == 0 {
		return runID, nil
	}

	header := []string{"time"}
	for i := range result.Frames[0].Positions {
		header = append(header,
			fmt.Sprintf("m%d_x", i),
			fmt.Sprintf("m%d_y", i),
			fmt.Sprintf("m%d_on_path", i),
		)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range result.Frames {
		row := []string{strconv.FormatFloat(f.Time, 'f', -1, 64)}
		for i, p := range f.Positions {
			on := "0"
			if f.OnPath[i] {
				on = "1"
			}
			row = append(row,
				strconv.FormatFloat(p.X, 'f', -1, 64),
				strconv.FormatFloat(p.Y, 'f', -1, 64),
				on,
			)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // stray directory, not a run
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) trajectoryPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "trajectory.csv")
}

// LoadTrajectory reads back a run's frames as per-marble coordinate series.
func (s *Store) LoadTrajectory(runID string) (times []float64, xs, ys [][]float64, err error) {
	f, err := os.Open(s.trajectoryPath(runID))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, nil, nil
	}

	numMarbles := (len(rows[0]) - 1) / 3
	xs = make([][]float64, numMarbles)
	ys = make([][]float64, numMarbles)

	for _, row := range rows[1:] {
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("bad time value %q: %w", row[0], err)
		}
		times = append(times, t)

		for i := 0; i < numMarbles; i++ {
			x, err := strconv.ParseFloat(row[1+i*3], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			y, err := strconv.ParseFloat(row[2+i*3], 64)
			if err != nil {
				return nil, nil, nil, err
			}
			xs[i] = append(xs[i], x)
			ys[i] = append(ys[i], y)
		}
	}
	return times, xs, ys, nil
}
