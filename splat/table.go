package splat

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/EliCDavis/vector/vector3"
	"gonum.org/v1/gonum/mat"
)

// SHTable is a row-per-point view of the spherical-harmonics color
// coefficients. Each row is keyed by the point's position; keys are kept
// as-is even when two points coincide in space. Columns hold the DC
// coefficients followed by the higher-order ones.
type SHTable struct {
	keys   []vector3.Float64
	coeffs *mat.Dense
}

// SHTable builds the coefficient table for the record set.
func (rs *RecordSet) SHTable() *SHTable {
	if rs.count == 0 {
		return &SHTable{}
	}

	keys := make([]vector3.Float64, rs.count)
	for i := 0; i < rs.count; i++ {
		keys[i] = vector3.New(rs.xyz.At(i, 0), rs.xyz.At(i, 1), rs.xyz.At(i, 2))
	}

	extra := 0
	if rs.higherOrder != nil {
		_, extra = rs.higherOrder.Dims()
	}
	coeffs := mat.NewDense(rs.count, 3+extra, nil)
	for i := 0; i < rs.count; i++ {
		for j := 0; j < 3; j++ {
			coeffs.Set(i, j, rs.directCurrent.At(i, j))
		}
		for j := 0; j < extra; j++ {
			coeffs.Set(i, 3+j, rs.higherOrder.At(i, j))
		}
	}
	return &SHTable{keys: keys, coeffs: coeffs}
}

// Len returns the number of rows.
func (t *SHTable) Len() int { return len(t.keys) }

// Cols returns the number of coefficient columns.
func (t *SHTable) Cols() int {
	if t.coeffs == nil {
		return 0
	}
	_, c := t.coeffs.Dims()
	return c
}

// Key returns the position keying row i.
func (t *SHTable) Key(i int) vector3.Float64 { return t.keys[i] }

// Row returns a copy of the coefficients of row i.
func (t *SHTable) Row(i int) []float64 {
	return mat.Row(nil, i, t.coeffs)
}

// WriteCSV writes the table with an x, y, z, sh_0..sh_K header row.
func (t *SHTable) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"x", "y", "z"}
	for j := 0; j < t.Cols(); j++ {
		header = append(header, "sh_"+strconv.Itoa(j))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < t.Len(); i++ {
		key := t.keys[i]
		record := make([]string, 0, 3+t.Cols())
		record = append(record, formatFloat(key.X()), formatFloat(key.Y()), formatFloat(key.Z()))
		for _, v := range t.Row(i) {
			record = append(record, formatFloat(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
