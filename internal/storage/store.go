package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/statplot/internal/demo"
	"gonum.org/v1/gonum/mat"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type AxesInfo struct {
	Name   string   `json:"name"`
	Spines []string `json:"spines"`
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Output    string             `json:"output,omitempty"`
	Width     float64            `json:"width_in"`
	Height    float64            `json:"height_in"`
	Axes      []AxesInfo         `json:"axes"`
	Stats     map[string]float64 `json:"stats"`
}

// Save records a rendered demo under a fresh run id. output is the image
// path the figure was written to, if any.
func (s *Store) Save(res *demo.Result, output string) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", res.Kind, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      res.Kind,
		Timestamp: now,
		Seed:      res.Seed,
		Output:    output,
		Stats:     res.Stats,
	}
	if res.Figure != nil {
		meta.Width, meta.Height = res.Figure.Size()
		for _, ax := range res.Figure.Axes() {
			info := AxesInfo{Name: ax.Name, Spines: []string{}}
			for _, sp := range ax.VisibleSpines() {
				info.Spines = append(info.Spines, sp.String())
			}
			meta.Axes = append(meta.Axes, info)
		}
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(runDir, samplesFile), res.Points); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return file.Close()
}

func writeSamples(path string, points *mat.Dense) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, points); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes one observation per row under an x0, x1, ... header.
func WriteCSV(w io.Writer, points mat.Matrix) error {
	cw := csv.NewWriter(w)
	if points == nil {
		cw.Flush()
		return cw.Error()
	}

	r, c := points.Dims()
	header := make([]string, c)
	for j := range header {
		header[j] = fmt.Sprintf("x%d", j)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = strconv.FormatFloat(points.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads the stored observations back into an n x d matrix.
func (s *Store) LoadSamples(runID string) (*mat.Dense, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("storage: run %s has no samples", runID)
	}

	cols := len(records[0])
	data := make([]float64, 0, (len(records)-1)*cols)
	for i, record := range records[1:] {
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: run %s row %d: %w", runID, i+1, err)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(len(records)-1, cols, data), nil
}
