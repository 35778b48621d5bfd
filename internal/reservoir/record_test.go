package reservoir

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Defaults(t *testing.T) {
	r, err := NewRecord("Svitiaz")
	require.NoError(t, err)

	assert.Equal(t, "Svitiaz", r.Name)
	assert.Equal(t, DefaultKind, r.Kind)
	assert.Equal(t, 1.0, r.Width)
	assert.Equal(t, 1.0, r.Length)
	assert.Equal(t, 1.0, r.MaxDepth)
}

func TestNewRecord_Derived(t *testing.T) {
	a, err := NewRecord("Lake A", WithKind("Lake"), WithDimensions(10, 5, 2))
	require.NoError(t, err)
	assert.Equal(t, 100.0, a.Volume())
	assert.Equal(t, 50.0, a.SurfaceArea())

	b, err := NewRecord("Lake B", WithKind("Lake"), WithDimensions(4, 4, 1))
	require.NoError(t, err)
	assert.Equal(t, 16.0, b.SurfaceArea())
	assert.Equal(t, 16.0, b.Volume())
}

func TestNewRecord_TrimsAndKeepsDefaultKindForBlank(t *testing.T) {
	r, err := NewRecord("  Pond 7 ", WithKind("   "))
	require.NoError(t, err)
	assert.Equal(t, "Pond 7", r.Name)
	assert.Equal(t, DefaultKind, r.Kind)
}

func TestNewRecord_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		want  error
	}{
		{"empty name", "", nil, ErrEmptyName},
		{"blank name", "   ", nil, ErrEmptyName},
		{"name too long", strings.Repeat("x", DefaultMaxNameLength+1), nil, ErrNameTooLong},
		{"kind too long", "ok", []Option{WithKind(strings.Repeat("k", DefaultMaxNameLength+1))}, ErrNameTooLong},
		{"negative width", "ok", []Option{WithDimensions(-1, 1, 1)}, ErrInvalidDimension},
		{"negative depth", "ok", []Option{WithDimensions(1, 1, -0.5)}, ErrInvalidDimension},
		{"nan length", "ok", []Option{WithDimensions(1, math.NaN(), 1)}, ErrInvalidDimension},
		{"infinite width", "ok", []Option{WithDimensions(math.Inf(1), 1, 1)}, ErrInvalidDimension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.input, tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewRecord_ZeroDimensionsAllowed(t *testing.T) {
	r, err := NewRecord("Dry", WithDimensions(0, 0, 0))
	require.NoError(t, err)
	assert.Zero(t, r.Volume())
}

func TestLimits_CountRunesNotBytes(t *testing.T) {
	name := strings.Repeat("ї", DefaultMaxNameLength) // 2 bytes per rune
	_, err := NewRecord(name, WithKind("Озеро"))
	require.NoError(t, err)

	_, err = Limits{MaxNameLength: 3}.NewRecord("Море")
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = Limits{}.NewRecord(strings.Repeat("x", 1000))
	assert.NoError(t, err, "zero limit disables the length check")
}

func TestRecord_Rename(t *testing.T) {
	src, err := NewRecord("Lake A", WithDimensions(10, 5, 2))
	require.NoError(t, err)

	dup, err := src.Rename("Lake A copy", DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, "Lake A copy", dup.Name)
	assert.Equal(t, src.Kind, dup.Kind)
	assert.Equal(t, src.Width, dup.Width)
	assert.Equal(t, "Lake A", src.Name)

	_, err = src.Rename(" ", DefaultLimits())
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRecord_CompareSurfaceArea(t *testing.T) {
	big := Record{Name: "big", Kind: "Lake", Width: 10, Length: 5, MaxDepth: 1}
	small := Record{Name: "small", Kind: "Lake", Width: 4, Length: 4, MaxDepth: 1}
	twin := Record{Name: "twin", Kind: "Lake", Width: 5, Length: 10, MaxDepth: 9}
	sea := Record{Name: "sea", Kind: "Sea", Width: 10, Length: 5, MaxDepth: 1}
	lower := Record{Name: "lower", Kind: "lake", Width: 10, Length: 5, MaxDepth: 1}

	assert.Equal(t, Greater, big.CompareSurfaceArea(small))
	assert.Equal(t, Less, small.CompareSurfaceArea(big))
	assert.Equal(t, Equal, big.CompareSurfaceArea(twin))
	assert.Equal(t, NotComparable, big.CompareSurfaceArea(sea))
	assert.Equal(t, NotComparable, big.CompareSurfaceArea(lower), "kind match is case-sensitive")

	gt, err := big.SurfaceAreaGreaterThan(small)
	require.NoError(t, err)
	assert.True(t, gt)

	gt, err = big.SurfaceAreaGreaterThan(twin)
	require.NoError(t, err)
	assert.False(t, gt)

	_, err = big.SurfaceAreaGreaterThan(sea)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestRecord_SameType(t *testing.T) {
	a := Record{Kind: "Pool"}
	assert.True(t, a.SameType(Record{Kind: "Pool"}))
	assert.False(t, a.SameType(Record{Kind: "Pool "}))
}

func TestRecord_Describe(t *testing.T) {
	r := Record{Name: "Lake A", Kind: "Lake", Width: 10, Length: 5, MaxDepth: 2}
	want := "Name: Lake A\n" +
		"Type: Lake\n" +
		"Width: 10 m\n" +
		"Length: 5 m\n" +
		"Max depth: 2 m\n" +
		"Volume: 100 m³\n" +
		"Surface area: 50 m²\n"
	assert.Equal(t, want, r.Describe(EnglishLabels))
	assert.Equal(t, "Lake A (Lake) 10x5x2", r.String())
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		10:        "10",
		2.5:       "2.5",
		0.1 + 0.2: "0.3",
		1e6:       "1e+06",
		1234567:   "1.23457e+06",
		0:         "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatNumber(in), "FormatNumber(%v)", in)
	}
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "not_comparable", NotComparable.String())
}
