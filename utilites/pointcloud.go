package utilites

import (
	"bytes"

	"github.com/EliCDavis/polyform/formats/ply"
	"github.com/EliCDavis/polyform/modeling"
	"github.com/EliCDavis/vector/vector3"
	"github.com/pkg/errors"
	rapio "github.com/recolude/rap/format/io"
	"github.com/recolude/rap/format/metadata"

	"github.com/recolude/splat-utils/splat"
)

// shC0 is the zeroth spherical-harmonics basis constant.
const shC0 = 0.28209479177387814

// dcToColor turns a DC coefficient into a displayable color channel.
func dcToColor(v float64) float64 {
	c := 0.5 + shC0*v
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// SplatToRapBinary serializes the record set's positions and DC colors as
// a binary PLY point cloud wrapped in a recording attachment.
func SplatToRapBinary(rs *splat.RecordSet) (rapio.Binary, error) {
	xyz := rs.XYZ()
	dc := rs.DirectCurrent()

	positionData := make([]vector3.Float64, 0, rs.Count())
	colorData := make([]vector3.Float64, 0, rs.Count())
	for i := 0; i < rs.Count(); i++ {
		positionData = append(positionData, vector3.New(xyz.At(i, 0), xyz.At(i, 1), xyz.At(i, 2)))
		colorData = append(colorData, vector3.New(
			dcToColor(dc.At(i, 0)),
			dcToColor(dc.At(i, 1)),
			dcToColor(dc.At(i, 2)),
		))
	}

	pc := modeling.NewPointCloud(
		map[string][]vector3.Vector[float64]{
			modeling.PositionAttribute: positionData,
			modeling.ColorAttribute:    colorData,
		},
		nil,
		nil,
		nil,
	)

	buf := bytes.Buffer{}
	if err := ply.WriteBinary(&buf, pc); err != nil {
		return rapio.Binary{}, errors.Wrap(err, "writing point cloud")
	}

	return rapio.NewBinary("points.ply", buf.Bytes(), metadata.NewBlock(map[string]metadata.Property{
		"points": metadata.NewIntProperty(rs.Count()),
	})), nil
}
