// Package splat decodes gaussian-splat point clouds into structured
// numeric arrays: positions, opacities, spherical-harmonics color
// coefficients, and per-point scale and rotation parameters.
package splat

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chenzhekl/goply"
	"gonum.org/v1/gonum/mat"
)

// Properties every splat point cloud must carry in its vertex element.
var requiredProps = []string{"x", "y", "z", "opacity", "f_dc_0", "f_dc_1", "f_dc_2"}

// Decode reads a splat point cloud and captures its per-point properties
// as numeric arrays. The source is either a path to a PLY file or an
// already parsed *goply.Ply. Decoding either fully succeeds or returns an
// error; no partial record set is produced.
func Decode(source interface{}) (*RecordSet, error) {
	switch s := source.(type) {
	case string:
		return decodeFile(s)
	case *goply.Ply:
		return decodePLY(s)
	default:
		return nil, &TypeMismatchError{Source: source}
	}
}

// CompareDimensions decodes the other source and reports, per record
// group, whether its point count matches. Values are not compared. Every
// property column shares the vertex element's row count, so each group
// reduces to a single count comparison.
func CompareDimensions(a *RecordSet, source interface{}) (map[string]bool, error) {
	b, err := Decode(source)
	if err != nil {
		return nil, err
	}
	return map[string]bool{
		FieldXYZ:           a.count == b.count,
		FieldOpacities:     a.count == b.count,
		FieldDirectCurrent: a.count == b.count,
	}, nil
}

func decodeFile(path string) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	ply, err := readPLY(f)
	if err != nil {
		return nil, err
	}
	return decodePLY(ply)
}

// goply reports malformed input by panicking; surface that as an error so
// a bad file never takes the caller down.
func readPLY(r io.Reader) (ply *goply.Ply, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &InvalidFormatError{Reason: fmt.Sprintf("parsing PLY: %v", p)}
		}
	}()
	return goply.New(bufio.NewReader(r)), nil
}

func vertexRows(ply *goply.Ply) (rows []goply.PlyElement, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &InvalidFormatError{Reason: fmt.Sprintf("reading vertex element: %v", p)}
		}
	}()
	return ply.Elements("vertex"), nil
}

func decodePLY(ply *goply.Ply) (*RecordSet, error) {
	rows, err := vertexRows(ply)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, &InvalidFormatError{Reason: `element "vertex" is missing`}
	}
	if len(rows) == 0 {
		// A declared vertex element with no points decodes to an empty
		// record set; there are no rows to source property columns from.
		return &RecordSet{}, nil
	}
	for _, name := range requiredProps {
		if _, ok := rows[0][name]; !ok {
			return nil, &InvalidFormatError{Reason: fmt.Sprintf("required property %q is missing", name)}
		}
	}

	rs := &RecordSet{count: len(rows)}
	if rs.xyz, err = columns(rows, []string{"x", "y", "z"}); err != nil {
		return nil, err
	}
	if rs.opacities, err = columns(rows, []string{"opacity"}); err != nil {
		return nil, err
	}
	if rs.directCurrent, err = columns(rows, []string{"f_dc_0", "f_dc_1", "f_dc_2"}); err != nil {
		return nil, err
	}

	for _, group := range []struct {
		prefix string
		dst    **mat.Dense
	}{
		{"f_rest_", &rs.higherOrder},
		{"scale_", &rs.scaling},
		{"rot_", &rs.rotation},
	} {
		names, err := suffixSortedProps(rows[0], group.prefix)
		if err != nil {
			return nil, err
		}
		if *group.dst, err = columns(rows, names); err != nil {
			return nil, err
		}
	}
	return rs, nil
}

// columns copies the named property columns, in order, into an N×len(names)
// matrix. A nil matrix is returned for an empty name list.
func columns(rows []goply.PlyElement, names []string) (*mat.Dense, error) {
	if len(names) == 0 {
		return nil, nil
	}
	m := mat.NewDense(len(rows), len(names), nil)
	for j, name := range names {
		for i, row := range rows {
			v, ok := numeric(row[name])
			if !ok {
				return nil, &InvalidFormatError{
					Reason: fmt.Sprintf("property %q holds a non-numeric value at row %d", name, i),
				}
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

// suffixSortedProps collects the properties starting with prefix and
// orders them by the base-10 integer after the last underscore. Property
// declaration order in the file is irrelevant.
func suffixSortedProps(row goply.PlyElement, prefix string) ([]string, error) {
	type prop struct {
		name  string
		index int
	}
	var props []prop
	for name := range row {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		index, err := suffixIndex(name)
		if err != nil {
			return nil, &InvalidFormatError{Reason: fmt.Sprintf("property %q has a non-numeric suffix", name)}
		}
		props = append(props, prop{name: name, index: index})
	}
	sort.SliceStable(props, func(i, j int) bool { return props[i].index < props[j].index })

	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.name
	}
	return names, nil
}

func suffixIndex(name string) (int, error) {
	i := strings.LastIndexByte(name, '_')
	if i < 0 || i == len(name)-1 {
		return 0, fmt.Errorf("no suffix in %q", name)
	}
	return strconv.Atoi(name[i+1:])
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint8:
		return float64(n), true
	case int16:
		return float64(n), true
	case uint16:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
