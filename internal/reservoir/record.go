// Package reservoir models reservoir records (lakes, seas, pools, ponds) and
// the bounded ordered collection the console operates on.
package reservoir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultKind is used when a record is created without a kind.
	DefaultKind = "Lake"

	// DefaultMaxNameLength bounds name and kind, in runes.
	DefaultMaxNameLength = 99
)

// Limits bounds the text fields of a record.
type Limits struct {
	MaxNameLength int // in runes, applied to both name and kind
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxNameLength: DefaultMaxNameLength}
}

// Record is a single reservoir. Records are plain values: copying a Record
// copies everything it owns.
type Record struct {
	Name     string
	Kind     string
	Width    float64
	Length   float64
	MaxDepth float64
}

// Option customizes a record under construction.
type Option func(*Record)

// WithKind sets the reservoir kind. An empty kind keeps DefaultKind.
func WithKind(kind string) Option {
	return func(r *Record) {
		if k := strings.TrimSpace(kind); k != "" {
			r.Kind = k
		}
	}
}

// WithDimensions sets width, length and maximum depth in meters.
func WithDimensions(width, length, maxDepth float64) Option {
	return func(r *Record) {
		r.Width = width
		r.Length = length
		r.MaxDepth = maxDepth
	}
}

// NewRecord builds a record with DefaultLimits. Unset fields default to
// kind "Lake" and 1x1x1 meters.
func NewRecord(name string, opts ...Option) (Record, error) {
	return DefaultLimits().NewRecord(name, opts...)
}

// NewRecord builds and validates a record against l.
func (l Limits) NewRecord(name string, opts ...Option) (Record, error) {
	r := Record{
		Name:     strings.TrimSpace(name),
		Kind:     DefaultKind,
		Width:    1.0,
		Length:   1.0,
		MaxDepth: 1.0,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if err := l.Validate(r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks text lengths and dimensions. Zero dimensions are allowed;
// negative, NaN and infinite values are not.
func (l Limits) Validate(r Record) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("name", ErrEmptyName)
	}
	if strings.TrimSpace(r.Kind) == "" {
		return invalid("kind", ErrEmptyName)
	}
	if l.MaxNameLength > 0 {
		if n := utf8.RuneCountInString(r.Name); n > l.MaxNameLength {
			return invalid("name", fmt.Errorf("%w: %d > %d", ErrNameTooLong, n, l.MaxNameLength))
		}
		if n := utf8.RuneCountInString(r.Kind); n > l.MaxNameLength {
			return invalid("kind", fmt.Errorf("%w: %d > %d", ErrNameTooLong, n, l.MaxNameLength))
		}
	}
	dims := []struct {
		field string
		value float64
	}{
		{"width", r.Width},
		{"length", r.Length},
		{"max_depth", r.MaxDepth},
	}
	for _, d := range dims {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) || d.value < 0 {
			return invalid(d.field, fmt.Errorf("%w: %v", ErrInvalidDimension, d.value))
		}
	}
	return nil
}

// Rename returns a copy of r carrying name, validated against l.
func (r Record) Rename(name string, l Limits) (Record, error) {
	out := r
	out.Name = strings.TrimSpace(name)
	if err := l.Validate(out); err != nil {
		return Record{}, err
	}
	return out, nil
}

// SurfaceArea returns width * length.
func (r Record) SurfaceArea() float64 {
	return r.Width * r.Length
}

// Volume returns width * length * maxDepth.
func (r Record) Volume() float64 {
	return r.Width * r.Length * r.MaxDepth
}

// SameType reports whether both records carry exactly the same kind.
func (r Record) SameType(other Record) bool {
	return r.Kind == other.Kind
}

// CompareSurfaceArea orders r against other by surface area. Records of
// different kinds are NotComparable. Ties require exact equality.
func (r Record) CompareSurfaceArea(other Record) Ordering {
	if !r.SameType(other) {
		return NotComparable
	}
	a, b := r.SurfaceArea(), other.SurfaceArea()
	switch {
	case a > b:
		return Greater
	case a < b:
		return Less
	case a == b:
		return Equal
	default:
		return NotComparable
	}
}

// SurfaceAreaGreaterThan reports whether r is strictly larger than other.
// It fails with ErrTypeMismatch instead of answering false for records of
// different kinds.
func (r Record) SurfaceAreaGreaterThan(other Record) (bool, error) {
	ord := r.CompareSurfaceArea(other)
	if ord == NotComparable {
		return false, fmt.Errorf("%q (%s) vs %q (%s): %w", r.Name, r.Kind, other.Name, other.Kind, ErrTypeMismatch)
	}
	return ord == Greater, nil
}

// Describe renders the multi-line information block shown by every display
// path.
func (r Record) Describe(l Labels) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", l.Name, r.Name)
	fmt.Fprintf(&sb, "%s: %s\n", l.Kind, r.Kind)
	fmt.Fprintf(&sb, "%s: %s %s\n", l.Width, FormatNumber(r.Width), l.Meters)
	fmt.Fprintf(&sb, "%s: %s %s\n", l.Length, FormatNumber(r.Length), l.Meters)
	fmt.Fprintf(&sb, "%s: %s %s\n", l.MaxDepth, FormatNumber(r.MaxDepth), l.Meters)
	fmt.Fprintf(&sb, "%s: %s %s\n", l.Volume, FormatNumber(r.Volume()), l.CubicMeters)
	fmt.Fprintf(&sb, "%s: %s %s\n", l.SurfaceArea, FormatNumber(r.SurfaceArea()), l.SquareMeters)
	return sb.String()
}

// String implements fmt.Stringer with the English labels.
func (r Record) String() string {
	return fmt.Sprintf("%s (%s) %sx%sx%s", r.Name, r.Kind,
		FormatNumber(r.Width), FormatNumber(r.Length), FormatNumber(r.MaxDepth))
}

// FormatNumber prints v with six significant digits and no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
