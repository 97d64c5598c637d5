package splat

import (
	"gonum.org/v1/gonum/mat"
)

// Canonical names of the six record groups.
const (
	FieldXYZ           = "xyz"
	FieldOpacities     = "opacities"
	FieldDirectCurrent = "direct_current"
	FieldHigherOrder   = "higher_order"
	FieldScaling       = "scaling"
	FieldRotation      = "rotation"
)

var fieldOrder = []string{
	FieldXYZ,
	FieldOpacities,
	FieldDirectCurrent,
	FieldHigherOrder,
	FieldScaling,
	FieldRotation,
}

// Field access goes through a fixed dispatch table so that unknown names
// are rejected instead of resolved by reflection.
var fieldAccessors = map[string]func(*RecordSet) *mat.Dense{
	FieldXYZ:           func(rs *RecordSet) *mat.Dense { return rs.xyz },
	FieldOpacities:     func(rs *RecordSet) *mat.Dense { return rs.opacities },
	FieldDirectCurrent: func(rs *RecordSet) *mat.Dense { return rs.directCurrent },
	FieldHigherOrder:   func(rs *RecordSet) *mat.Dense { return rs.higherOrder },
	FieldScaling:       func(rs *RecordSet) *mat.Dense { return rs.scaling },
	FieldRotation:      func(rs *RecordSet) *mat.Dense { return rs.rotation },
}

// FieldNames lists the six record groups in their canonical order.
func FieldNames() []string {
	names := make([]string, len(fieldOrder))
	copy(names, fieldOrder)
	return names
}

// RecordSet holds the per-point properties of one decoded splat point
// cloud. Every matrix shares the same leading dimension. A record set is
// read only once decoded; callers must not modify the returned matrices.
type RecordSet struct {
	count         int
	xyz           *mat.Dense
	opacities     *mat.Dense
	directCurrent *mat.Dense

	// nil when the source declared no properties of the group
	higherOrder *mat.Dense
	scaling     *mat.Dense
	rotation    *mat.Dense
}

// Count returns the number of points.
func (rs *RecordSet) Count() int { return rs.count }

// XYZ returns the N×3 positions.
func (rs *RecordSet) XYZ() *mat.Dense { return rs.xyz }

// Opacities returns the N×1 opacity column.
func (rs *RecordSet) Opacities() *mat.Dense { return rs.opacities }

// DirectCurrent returns the N×3 zeroth-order color coefficients.
func (rs *RecordSet) DirectCurrent() *mat.Dense { return rs.directCurrent }

// HigherOrder returns the N×M higher-order color coefficients, columns
// ordered by ascending f_rest suffix, or nil when the source had none.
func (rs *RecordSet) HigherOrder() *mat.Dense { return rs.higherOrder }

// Scaling returns the N×S scale parameters, columns ordered by ascending
// scale suffix, or nil when the source had none.
func (rs *RecordSet) Scaling() *mat.Dense { return rs.scaling }

// Rotation returns the N×R rotation parameters, columns ordered by
// ascending rot suffix, or nil when the source had none.
func (rs *RecordSet) Rotation() *mat.Dense { return rs.rotation }

// Dims reports the shape of every record group.
func (rs *RecordSet) Dims() map[string][2]int {
	out := make(map[string][2]int, len(fieldOrder))
	for _, name := range fieldOrder {
		out[name] = rs.shape(fieldAccessors[name](rs))
	}
	return out
}

func (rs *RecordSet) shape(m *mat.Dense) [2]int {
	if m == nil {
		return [2]int{rs.count, 0}
	}
	r, c := m.Dims()
	return [2]int{r, c}
}

// Select returns the requested record groups keyed by field name. With no
// names it returns all six groups.
func (rs *RecordSet) Select(names ...string) (map[string]*mat.Dense, error) {
	if len(names) == 0 {
		names = fieldOrder
	}
	out := make(map[string]*mat.Dense, len(names))
	for _, name := range names {
		accessor, ok := fieldAccessors[name]
		if !ok {
			return nil, &UnknownFieldError{Field: name}
		}
		out[name] = accessor(rs)
	}
	return out, nil
}
