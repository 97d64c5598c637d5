// Package transforms reads and writes the camera-pose manifests that
// accompany synthetic multi-view datasets (transforms_<split>.json) and
// converts them into RAP recordings.
package transforms

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/EliCDavis/vector/vector3"
	"github.com/pkg/errors"
)

// Splits are the dataset splits a manifest directory may carry.
var Splits = []string{"train", "val", "test"}

// Manifest describes the camera poses of one dataset split.
type Manifest struct {
	CameraAngleX float64 `json:"camera_angle_x"`
	Frames       []Frame `json:"frames"`
}

// Frame is one rendered view: the image it belongs to and the camera's
// world transform at capture time.
type Frame struct {
	FilePath        string        `json:"file_path"`
	Rotation        float64       `json:"rotation"`
	TransformMatrix [4][4]float64 `json:"transform_matrix"`
}

// Load reads a manifest from disk.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrap(err, "reading transforms manifest")
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrapf(err, "parsing transforms manifest %s", path)
	}
	return m, nil
}

// Save writes the manifest with the 4-space indentation the dataset
// exporters emit.
func (m Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encoding transforms manifest")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing transforms manifest %s", path)
}

// LoadSplits reads every transforms_<split>.json present under dir.
// Absent splits are skipped, not an error.
func LoadSplits(dir string) (map[string]Manifest, error) {
	out := make(map[string]Manifest)
	for _, split := range Splits {
		path := filepath.Join(dir, "transforms_"+split+".json")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		m, err := Load(path)
		if err != nil {
			return nil, err
		}
		out[split] = m
	}
	return out, nil
}

var frameIndexPattern = regexp.MustCompile("[0-9]+")

// Index returns the frame number embedded in the file path, e.g.
// "./train/r_12" yields 12.
func (f Frame) Index() (int, error) {
	digits := frameIndexPattern.FindString(filepath.Base(f.FilePath))
	if digits == "" {
		return 0, errors.Errorf("frame path %q carries no index", f.FilePath)
	}
	return strconv.Atoi(digits)
}

// Translation returns the camera position stored in the transform.
func (f Frame) Translation() vector3.Float64 {
	return vector3.New(f.TransformMatrix[0][3], f.TransformMatrix[1][3], f.TransformMatrix[2][3])
}

// EulerZXY decomposes the rotation block of the transform as Rz·Rx·Ry and
// returns the angles in degrees.
func (f Frame) EulerZXY() (x, y, z float64) {
	m := f.TransformMatrix
	sx := m[2][1]
	if sx > 1 {
		sx = 1
	} else if sx < -1 {
		sx = -1
	}
	const toDeg = 180 / math.Pi
	x = math.Asin(sx) * toDeg
	y = math.Atan2(-m[2][0], m[2][2]) * toDeg
	z = math.Atan2(-m[0][1], m[1][1]) * toDeg
	return x, y, z
}
