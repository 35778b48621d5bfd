package reservoir

// Labels holds the display text used by Describe, ListAll and ExportText.
// internal/messages builds one per supported language.
type Labels struct {
	Name        string
	Kind        string
	Width       string
	Length      string
	MaxDepth    string
	Volume      string
	SurfaceArea string

	Meters       string
	SquareMeters string
	CubicMeters  string

	Empty       string // shown by ListAll for an empty collection
	Total       string // "Total reservoirs"
	ItemHeading string // format with one %d, 1-based
	ReportCount string // count line of the text summary
	ReportItem  string // format with one %d, 1-based
}

// EnglishLabels is the built-in English label set.
var EnglishLabels = Labels{
	Name:         "Name",
	Kind:         "Type",
	Width:        "Width",
	Length:       "Length",
	MaxDepth:     "Max depth",
	Volume:       "Volume",
	SurfaceArea:  "Surface area",
	Meters:       "m",
	SquareMeters: "m²",
	CubicMeters:  "m³",
	Empty:        "The collection is empty",
	Total:        "Total reservoirs",
	ItemHeading:  "--- Reservoir %d ---",
	ReportCount:  "Number of reservoirs",
	ReportItem:   "Reservoir %d:",
}
