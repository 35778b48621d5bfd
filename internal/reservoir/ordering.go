package reservoir

// Ordering is the outcome of comparing two records by surface area.
type Ordering int

const (
	NotComparable Ordering = iota
	Less
	Equal
	Greater
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "not_comparable"
	}
}
