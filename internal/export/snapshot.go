// Package export persists generated planets: a compressed snapshot of the
// sampled surface and a SQLite store for vegetation instances.
package export

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

const snapshotVersion = 1

// Header is written as a plain JSON line ahead of the body so tools can
// identify a snapshot without decoding it.
type Header struct {
	Version int    `json:"version"`
	Seed    uint32 `json:"seed"`
}

// SampleV1 is one surface grid cell.
type SampleV1 struct {
	Elevation   float64 `json:"elevation"`
	Temperature float64 `json:"temperature"`
	Moisture    float64 `json:"moisture"`
	River       float64 `json:"river"`
	Biome       int     `json:"biome"`
}

// VegetationV1 is one placed tree.
type VegetationV1 struct {
	ID     int        `json:"id"`
	Biome  int        `json:"biome"`
	Height float64    `json:"height"`
	Pos    [3]float64 `json:"pos"`
}

// SnapshotV1 is the full persisted planet: generation parameters plus the
// sampled surface grid (row-major, GridWidth*GridHeight) and vegetation.
type SnapshotV1 struct {
	Header Header `json:"header"`

	Radius     float64 `json:"radius"`
	WaterLevel float64 `json:"water_level"`
	GridWidth  int     `json:"grid_width"`
	GridHeight int     `json:"grid_height"`

	Samples    []SampleV1     `json:"samples"`
	Vegetation []VegetationV1 `json:"vegetation,omitempty"`
}

// NewSnapshot returns an empty snapshot with the current version stamped.
func NewSnapshot(seed uint32) SnapshotV1 {
	return SnapshotV1{Header: Header{Version: snapshotVersion, Seed: seed}}
}

func WriteSnapshot(path string, snap SnapshotV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 256*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(snap.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(&snap); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

func ReadSnapshot(path string) (SnapshotV1, error) {
	var snap SnapshotV1
	f, err := os.Open(path)
	if err != nil {
		return snap, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return snap, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return snap, fmt.Errorf("reading header: %w", err)
	}
	var hdr Header
	if err := json.Unmarshal(line, &hdr); err != nil {
		return snap, fmt.Errorf("parsing header: %w", err)
	}
	if hdr.Version != snapshotVersion {
		return snap, fmt.Errorf("unsupported snapshot version %d", hdr.Version)
	}

	if err := gob.NewDecoder(br).Decode(&snap); err != nil {
		return snap, fmt.Errorf("gob decode: %w", err)
	}
	return snap, nil
}
