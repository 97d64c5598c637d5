package transforms

import (
	"sort"

	"github.com/recolude/rap/format"
	"github.com/recolude/rap/format/collection/euler"
	"github.com/recolude/rap/format/collection/event"
	"github.com/recolude/rap/format/collection/position"
	"github.com/recolude/rap/format/metadata"
)

type sortPositionByTime []position.Capture

func (a sortPositionByTime) Len() int           { return len(a) }
func (a sortPositionByTime) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a sortPositionByTime) Less(i, j int) bool { return a[i].Time() < a[j].Time() }

type sortRotationByTime []euler.Capture

func (a sortRotationByTime) Len() int           { return len(a) }
func (a sortRotationByTime) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a sortRotationByTime) Less(i, j int) bool { return a[i].Time() < a[j].Time() }

type sortEventByTime []event.Capture

func (a sortEventByTime) Len() int           { return len(a) }
func (a sortEventByTime) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a sortEventByTime) Less(i, j int) bool { return a[i].Time() < a[j].Time() }

// ToRecording converts the manifest into a recording with one position,
// rotation, and event capture per frame. Manifests carry no timestamps,
// so the frame index embedded in each file path is used as time.
func ToRecording(id, name string, m Manifest) (format.Recording, error) {
	positionCaptures := make([]position.Capture, 0, len(m.Frames))
	rotationCaptures := make([]euler.Capture, 0, len(m.Frames))
	eventCaptures := make([]event.Capture, 0, len(m.Frames))

	for _, frame := range m.Frames {
		index, err := frame.Index()
		if err != nil {
			return nil, err
		}
		time := float64(index)

		pos := frame.Translation()
		positionCaptures = append(positionCaptures, position.NewCapture(time, pos.X(), pos.Y(), pos.Z()))

		rx, ry, rz := frame.EulerZXY()
		rotationCaptures = append(rotationCaptures, euler.NewEulerZXYCapture(time, rx, ry, rz))

		eventCaptures = append(eventCaptures, event.NewCapture(time, frame.FilePath, metadata.NewBlock(map[string]metadata.Property{
			"Rotation": metadata.NewFloat32Property(float32(frame.Rotation)),
		})))
	}

	sort.Sort(sortPositionByTime(positionCaptures))
	sort.Sort(sortRotationByTime(rotationCaptures))
	sort.Sort(sortEventByTime(eventCaptures))

	return format.NewRecording(
		id,
		name,
		[]format.CaptureCollection{
			position.NewCollection("Position", positionCaptures),
			euler.NewCollection("Rotation", rotationCaptures),
			event.NewCollection("Frame", eventCaptures),
		},
		nil,
		metadata.NewBlock(map[string]metadata.Property{
			"Camera Angle X": metadata.NewFloat32Property(float32(m.CameraAngleX)),
			"Frames":         metadata.NewIntProperty(len(m.Frames)),
		}),
		[]format.Binary{},
		[]format.BinaryReference{},
	), nil
}
