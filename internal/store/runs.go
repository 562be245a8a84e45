package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/cartgrid/internal/analysis"
	"github.com/san-kum/cartgrid/internal/cartesian"
)

// Store keeps pan sweep runs on disk, one directory per run holding
// metadata.json and samples.csv.
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
	Timestamp time.Time          `json:"timestamp"`
	Axis      string             `json:"axis"`
	From      float64            `json:"from"`
	To        float64            `json:"to"`
	Steps     int                `json:"steps"`
	Fixed     float64            `json:"fixed"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Interval  float64            `json:"interval"`
	Summary   []analysis.Summary `json:"summary"`
}

var sampleHeader = []string{"offset_x", "offset_y", "lines", "major", "axes", "labels", "clamped", "commands"}

func (s *Store) Save(res *analysis.SweepResult) (string, error) {
	cfg := res.Config
	runID := fmt.Sprintf("sweep_%s_%d", cfg.Axis, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Axis:      cfg.Axis.String(),
		From:      cfg.From,
		To:        cfg.To,
		Steps:     cfg.Steps,
		Fixed:     cfg.Fixed,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Interval:  cfg.Interval,
	}
	for _, m := range analysis.Metrics {
		series, err := res.Series(m)
		if err != nil {
			return "", err
		}
		meta.Summary = append(meta.Summary, analysis.Summarize(m, series))
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

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(sampleHeader); err != nil {
		return "", err
	}
	for _, smp := range res.Samples {
		row := []string{
			strconv.FormatFloat(smp.Offset.X, 'g', -1, 64),
			strconv.FormatFloat(smp.Offset.Y, 'g', -1, 64),
			strconv.Itoa(smp.Counts.GridLines),
			strconv.Itoa(smp.Counts.MajorLines),
			strconv.Itoa(smp.Counts.Axes),
			strconv.Itoa(smp.Counts.Labels),
			strconv.Itoa(smp.Counts.Clamped),
			strconv.Itoa(smp.Commands),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

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

// LoadSamples reads samples.csv back. Rows that fail to parse are skipped.
func (s *Store) LoadSamples(runID string) ([]analysis.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []analysis.Sample{}, nil
	}

	samples := make([]analysis.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(sampleHeader) {
			continue
		}
		x, errX := strconv.ParseFloat(record[0], 64)
		y, errY := strconv.ParseFloat(record[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		ints := make([]int, len(sampleHeader)-2)
		ok := true
		for j := range ints {
			v, err := strconv.Atoi(record[j+2])
			if err != nil {
				ok = false
				break
			}
			ints[j] = v
		}
		if !ok {
			continue
		}
		samples = append(samples, analysis.Sample{
			Offset: cartesian.Point{X: x, Y: y},
			Counts: cartesian.Counts{
				GridLines:  ints[0],
				MajorLines: ints[1],
				Axes:       ints[2],
				Labels:     ints[3],
				Clamped:    ints[4],
			},
			Commands: ints[5],
		})
	}

	return samples, nil
}
