package splat

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"testing"

	"go.viam.com/test"
)

func TestSHTable(t *testing.T) {
	props := baseProps()
	for i := 0; i < 2; i++ {
		props = append(props, fmt.Sprintf("f_rest_%d", i))
	}
	rs, err := Decode(writeTestPLY(t, props, sequentialRows(3, len(props))))
	test.That(t, err, test.ShouldBeNil)

	table := rs.SHTable()
	test.That(t, table.Len(), test.ShouldEqual, 3)
	test.That(t, table.Cols(), test.ShouldEqual, 5)

	// DC columns first, then higher order
	test.That(t, table.Row(1), test.ShouldResemble, []float64{104, 105, 106, 107, 108})

	key := table.Key(2)
	test.That(t, key.X(), test.ShouldEqual, 200)
	test.That(t, key.Y(), test.ShouldEqual, 201)
	test.That(t, key.Z(), test.ShouldEqual, 202)
}

func TestSHTableDuplicateKeys(t *testing.T) {
	props := baseProps()
	rows := [][]float64{
		{1, 2, 3, 0.5, 10, 11, 12},
		{1, 2, 3, 0.25, 20, 21, 22},
	}
	rs, err := Decode(writeTestPLY(t, props, rows))
	test.That(t, err, test.ShouldBeNil)

	table := rs.SHTable()
	test.That(t, table.Len(), test.ShouldEqual, 2)
	test.That(t, table.Key(0), test.ShouldResemble, table.Key(1))
	test.That(t, table.Row(0), test.ShouldNotResemble, table.Row(1))
}

func TestSHTableCSV(t *testing.T) {
	rs := decodeFixture(t, 3)

	var buf bytes.Buffer
	test.That(t, rs.SHTable().WriteCSV(&buf), test.ShouldBeNil)

	records, err := csv.NewReader(&buf).ReadAll()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, records, test.ShouldHaveLength, 4)
	test.That(t, records[0][0], test.ShouldEqual, "x")
	test.That(t, records[0][3], test.ShouldEqual, "sh_0")
	test.That(t, records[0], test.ShouldHaveLength, 3+12)
	test.That(t, records[1][0], test.ShouldEqual, "0")
	test.That(t, records[2][3], test.ShouldEqual, "104")
}
