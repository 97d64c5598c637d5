package splat

import "fmt"

// NotFoundError is returned when a source path does not point at a file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("splat: file not found: %s", e.Path)
}

// InvalidFormatError is returned when the source is not a readable splat
// point cloud: the file is malformed, a required property is missing, or a
// property that should carry a numeric suffix does not.
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("splat: invalid point cloud: %s", e.Reason)
}

// UnknownFieldError is returned when a caller selects a field name outside
// the six known record groups.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("splat: unknown field %q", e.Field)
}

// TypeMismatchError is returned when a decode source is neither a file path
// nor a parsed PLY structure.
type TypeMismatchError struct {
	Source interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("splat: source must be a path or a parsed PLY, got %T", e.Source)
}
