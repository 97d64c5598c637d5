package splat

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func decodeFixture(t *testing.T, n int) *RecordSet {
	t.Helper()
	props := splatProps()
	rs, err := Decode(writeTestPLY(t, props, sequentialRows(n, len(props))))
	test.That(t, err, test.ShouldBeNil)
	return rs
}

func TestSelectAll(t *testing.T) {
	rs := decodeFixture(t, 3)

	all, err := rs.Select()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, all, test.ShouldHaveLength, 6)

	named, err := rs.Select(
		FieldXYZ,
		FieldOpacities,
		FieldDirectCurrent,
		FieldHigherOrder,
		FieldScaling,
		FieldRotation,
	)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, named, test.ShouldHaveLength, 6)

	for _, name := range FieldNames() {
		test.That(t, mat.Equal(all[name], named[name]), test.ShouldBeTrue)
	}
}

func TestSelectSubset(t *testing.T) {
	rs := decodeFixture(t, 3)

	subset, err := rs.Select(FieldXYZ, FieldRotation)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, subset, test.ShouldHaveLength, 2)
	test.That(t, mat.Equal(subset[FieldXYZ], rs.XYZ()), test.ShouldBeTrue)
	test.That(t, mat.Equal(subset[FieldRotation], rs.Rotation()), test.ShouldBeTrue)
}

func TestSelectUnknownField(t *testing.T) {
	rs := decodeFixture(t, 3)

	_, err := rs.Select("bogus")
	test.That(t, err, test.ShouldNotBeNil)

	var unknown *UnknownFieldError
	test.That(t, errors.As(err, &unknown), test.ShouldBeTrue)
	test.That(t, unknown.Field, test.ShouldEqual, "bogus")
	test.That(t, err.Error(), test.ShouldContainSubstring, "bogus")
}
