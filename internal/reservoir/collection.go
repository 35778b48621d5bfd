package reservoir

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// DefaultCapacity is the number of records a collection holds unless
// configured otherwise.
const DefaultCapacity = 50

// Collection is an ordered, bounded sequence of records. It is not safe for
// concurrent use; the console owns the only instance.
type Collection struct {
	records  []Record
	capacity int
	limits   Limits
	logger   *zap.Logger
}

// CollectionOption configures a Collection.
type CollectionOption func(*Collection)

// WithCapacity sets the maximum size. Zero or negative means unbounded.
func WithCapacity(n int) CollectionOption {
	return func(c *Collection) { c.capacity = n }
}

// WithLimits sets the text limits applied on Add and Duplicate.
func WithLimits(l Limits) CollectionOption {
	return func(c *Collection) { c.limits = l }
}

// WithLogger attaches a logger for mutation tracing.
func WithLogger(l *zap.Logger) CollectionOption {
	return func(c *Collection) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCollection returns an empty collection.
func NewCollection(opts ...CollectionOption) *Collection {
	c := &Collection{
		capacity: DefaultCapacity,
		limits:   DefaultLimits(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.capacity > 0 {
		c.records = make([]Record, 0, c.capacity)
	}
	return c
}

// Len returns the number of stored records.
func (c *Collection) Len() int { return len(c.records) }

// Capacity returns the configured bound, or 0 when unbounded.
func (c *Collection) Capacity() int {
	if c.capacity < 0 {
		return 0
	}
	return c.capacity
}

// Limits returns the text limits applied to new records.
func (c *Collection) Limits() Limits { return c.limits }

// Full reports whether another Add would fail with ErrCollectionFull.
func (c *Collection) Full() bool {
	return c.capacity > 0 && len(c.records) >= c.capacity
}

// Records returns a copy of the stored records in order.
func (c *Collection) Records() []Record {
	return slices.Clone(c.records)
}

func (c *Collection) checkPosition(pos int) error {
	if pos < 0 || pos >= len(c.records) {
		return &IndexError{Position: pos, Size: len(c.records)}
	}
	return nil
}

// Add appends r. On failure the collection is unchanged.
func (c *Collection) Add(r Record) error {
	if c.Full() {
		c.logger.Debug("add rejected", zap.String("op", "add"), zap.Int("size", len(c.records)), zap.Int("capacity", c.capacity))
		return fmt.Errorf("add %q: %w (capacity %d)", r.Name, ErrCollectionFull, c.capacity)
	}
	if err := c.limits.Validate(r); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	c.records = append(c.records, r)
	c.logger.Debug("record added",
		zap.String("op", "add"),
		zap.String("name", r.Name),
		zap.String("kind", r.Kind),
		zap.Int("position", len(c.records)-1),
		zap.Int("size", len(c.records)))
	return nil
}

// RemoveAt deletes the record at pos, shifting later records one step
// earlier, and returns the removed record.
func (c *Collection) RemoveAt(pos int) (Record, error) {
	if err := c.checkPosition(pos); err != nil {
		return Record{}, fmt.Errorf("remove: %w", err)
	}
	removed := c.records[pos]
	c.records = slices.Delete(c.records, pos, pos+1)
	c.logger.Debug("record removed",
		zap.String("op", "remove"),
		zap.String("name", removed.Name),
		zap.Int("position", pos),
		zap.Int("size", len(c.records)))
	return removed, nil
}

// Get returns a copy of the record at pos.
func (c *Collection) Get(pos int) (Record, error) {
	if err := c.checkPosition(pos); err != nil {
		return Record{}, fmt.Errorf("get: %w", err)
	}
	return c.records[pos], nil
}

// All yields every position and record in order.
func (c *Collection) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range c.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// FindByType yields the records whose kind equals kind exactly. Each range
// over the result performs a fresh scan.
func (c *Collection) FindByType(kind string) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range c.records {
			if r.Kind != kind {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// Match is a record found by a query together with its position.
type Match struct {
	Position int
	Record   Record
}

// FindAllByType collects FindByType, failing with ErrNotFound when nothing
// matches.
func (c *Collection) FindAllByType(kind string) ([]Match, error) {
	var out []Match
	for i, r := range c.FindByType(kind) {
		out = append(out, Match{Position: i, Record: r})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrNotFound)
	}
	return out, nil
}

// Comparison is the result of comparing two stored records.
type Comparison struct {
	FirstPosition  int
	SecondPosition int
	First          Record
	Second         Record
	FirstArea      float64
	SecondArea     float64
	Result         Ordering
}

// Compare orders the records at a and b by surface area. Invalid positions
// fail before any comparison. Records of different kinds yield a Comparison
// with Result NotComparable together with ErrTypeMismatch.
func (c *Collection) Compare(a, b int) (Comparison, error) {
	if err := c.checkPosition(a); err != nil {
		return Comparison{}, fmt.Errorf("compare: %w", err)
	}
	if err := c.checkPosition(b); err != nil {
		return Comparison{}, fmt.Errorf("compare: %w", err)
	}
	first, second := c.records[a], c.records[b]
	cmp := Comparison{
		FirstPosition:  a,
		SecondPosition: b,
		First:          first,
		Second:         second,
		FirstArea:      first.SurfaceArea(),
		SecondArea:     second.SurfaceArea(),
		Result:         first.CompareSurfaceArea(second),
	}
	if cmp.Result == NotComparable {
		return cmp, fmt.Errorf("compare %d and %d: %w", a, b, ErrTypeMismatch)
	}
	return cmp, nil
}

// Duplicate appends a copy of the record at src renamed to newName. Nothing
// is changed when any step fails.
func (c *Collection) Duplicate(src int, newName string) (Record, error) {
	source, err := c.Get(src)
	if err != nil {
		return Record{}, fmt.Errorf("duplicate: %w", err)
	}
	dup, err := source.Rename(newName, c.limits)
	if err != nil {
		return Record{}, fmt.Errorf("duplicate: %w", err)
	}
	if err := c.Add(dup); err != nil {
		return Record{}, fmt.Errorf("duplicate: %w", err)
	}
	c.logger.Debug("record duplicated",
		zap.String("op", "duplicate"),
		zap.Int("source", src),
		zap.String("name", dup.Name))
	return dup, nil
}

// ListAll writes every record's description under a 1-based heading, or
// the empty message.
func (c *Collection) ListAll(w io.Writer, l Labels) error {
	var sb strings.Builder
	if len(c.records) == 0 {
		sb.WriteString(l.Empty)
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())
		return err
	}
	fmt.Fprintf(&sb, "%s: %d\n", l.Total, len(c.records))
	for i, r := range c.records {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, l.ItemHeading, i+1)
		sb.WriteString("\n")
		sb.WriteString(r.Describe(l))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
