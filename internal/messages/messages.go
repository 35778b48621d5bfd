// Package messages holds the fixed user-facing message sets of the console.
// Ukrainian is the primary language; English is provided as an alternative.
package messages

import (
	"strings"

	"golang.org/x/text/language"

	"reservoirs/internal/reservoir"
)

// Catalog is one complete message set.
type Catalog struct {
	Tag language.Tag

	Title      string
	MenuTitle  string
	Menu       []MenuItem
	MenuPrompt string

	PromptName       string
	PromptKind       string
	PromptWidth      string
	PromptLength     string
	PromptDepth      string
	PromptRemove     string // one %d: current size
	PromptSearchKind string
	PromptFirst      string
	PromptSecond     string
	PromptCopySource string
	PromptCopyName   string

	Added          string
	Removed        string
	Full           string
	InvalidIndex   string
	InvalidIndexes string
	InvalidChoice  string
	InvalidNumber  string
	InvalidRecord  string
	EmptyName      string
	NameTooLong    string // one %d: limit
	BadDimension   string

	SearchHeader   string // one %s: kind query
	NotFound       string
	CompareHeader  string
	CompareColumns []string
	NotComparable  string
	FirstLarger    string
	SecondLarger   string
	EqualArea      string

	TextReportTitle   string
	BinaryReportTitle string
	BinaryReportNote  string

	Goodbye     string
	DefaultKind string

	Labels reservoir.Labels
}

// MenuItem is one numbered menu line.
type MenuItem struct {
	Choice int
	Text   string
}

// Ukrainian is the default catalog.
var Ukrainian = &Catalog{
	Tag:       language.Ukrainian,
	Title:     "Система управління водоймами",
	MenuTitle: "=== МЕНЮ УПРАВЛІННЯ ВОДОЙМАМИ ===",
	Menu: []MenuItem{
		{1, "Додати водойму"},
		{2, "Видалити водойму"},
		{3, "Показати всі водойми"},
		{4, "Знайти водойми за типом"},
		{5, "Порівняти дві водойми"},
		{6, "Копіювати водойму"},
		{7, "Зберегти у текстовий файл"},
		{8, "Зберегти у бінарний файл"},
		{0, "Вийти"},
	},
	MenuPrompt: "Оберіть опцію: ",

	PromptName:       "Введіть назву водойми: ",
	PromptKind:       "Введіть тип (Озеро/Море/Басейн/Ставок): ",
	PromptWidth:      "Введіть ширину (м): ",
	PromptLength:     "Введіть довжину (м): ",
	PromptDepth:      "Введіть максимальну глибину (м): ",
	PromptRemove:     "Введіть номер водойми для видалення (1-%d): ",
	PromptSearchKind: "Введіть тип для пошуку: ",
	PromptFirst:      "Введіть номер першої водойми: ",
	PromptSecond:     "Введіть номер другої водойми: ",
	PromptCopySource: "Введіть номер водойми для копіювання: ",
	PromptCopyName:   "Введіть нову назву для копії: ",

	Added:          "Водойма додана успішно!",
	Removed:        "Водойма видалена успішно!",
	Full:           "Масив переповнений!",
	InvalidIndex:   "Неправильний індекс!",
	InvalidIndexes: "Неправильні індекси!",
	InvalidChoice:  "Неправильний вибір!",
	InvalidNumber:  "Неправильне число!",
	InvalidRecord:  "Некоректні дані водойми",
	EmptyName:      "назва не може бути порожньою",
	NameTooLong:    "текст довший за %d символів",
	BadDimension:   "розміри мають бути невід'ємними числами",

	SearchHeader:   "Водойми типу '%s':",
	NotFound:       "Водойм цього типу не знайдено",
	CompareHeader:  "Порівняння водойм:",
	CompareColumns: []string{"№", "Назва", "Тип", "Площа поверхні, м²"},
	NotComparable:  "Водойми різних типів, порівняння неможливе",
	FirstLarger:    "Водойма 1 більша за площею",
	SecondLarger:   "Водойма 2 більша за площею",
	EqualArea:      "Водойми мають однакову площу",

	TextReportTitle:   "=== ЗБЕРЕЖЕННЯ У ТЕКСТОВИЙ ФАЙЛ ===",
	BinaryReportTitle: "=== ЗБЕРЕЖЕННЯ У БІНАРНИЙ ФАЙЛ ===",
	BinaryReportNote:  "Дані для бінарного файлу (імітація):",

	Goodbye:     "До побачення!",
	DefaultKind: "Озеро",

	Labels: reservoir.Labels{
		Name:         "Назва",
		Kind:         "Тип",
		Width:        "Ширина",
		Length:       "Довжина",
		MaxDepth:     "Максимальна глибина",
		Volume:       "Об'єм",
		SurfaceArea:  "Площа поверхні",
		Meters:       "м",
		SquareMeters: "м²",
		CubicMeters:  "м³",
		Empty:        "Масив порожній",
		Total:        "Всього водойм",
		ItemHeading:  "--- Водойма %d ---",
		ReportCount:  "Кількість водойм",
		ReportItem:   "Водойма %d:",
	},
}

// English mirrors Ukrainian.
var English = &Catalog{
	Tag:       language.English,
	Title:     "Reservoir management system",
	MenuTitle: "=== RESERVOIR MANAGEMENT MENU ===",
	Menu: []MenuItem{
		{1, "Add a reservoir"},
		{2, "Remove a reservoir"},
		{3, "Show all reservoirs"},
		{4, "Find reservoirs by type"},
		{5, "Compare two reservoirs"},
		{6, "Copy a reservoir"},
		{7, "Save to text file"},
		{8, "Save to binary file"},
		{0, "Exit"},
	},
	MenuPrompt: "Choose an option: ",

	PromptName:       "Enter reservoir name: ",
	PromptKind:       "Enter type (Lake/Sea/Pool/Pond): ",
	PromptWidth:      "Enter width (m): ",
	PromptLength:     "Enter length (m): ",
	PromptDepth:      "Enter maximum depth (m): ",
	PromptRemove:     "Enter the number of the reservoir to remove (1-%d): ",
	PromptSearchKind: "Enter type to search for: ",
	PromptFirst:      "Enter the number of the first reservoir: ",
	PromptSecond:     "Enter the number of the second reservoir: ",
	PromptCopySource: "Enter the number of the reservoir to copy: ",
	PromptCopyName:   "Enter a new name for the copy: ",

	Added:          "Reservoir added successfully!",
	Removed:        "Reservoir removed successfully!",
	Full:           "The collection is full!",
	InvalidIndex:   "Invalid index!",
	InvalidIndexes: "Invalid indexes!",
	InvalidChoice:  "Invalid choice!",
	InvalidNumber:  "Invalid number!",
	InvalidRecord:  "Invalid reservoir data",
	EmptyName:      "name must not be empty",
	NameTooLong:    "text is longer than %d characters",
	BadDimension:   "dimensions must be non-negative numbers",

	SearchHeader:   "Reservoirs of type '%s':",
	NotFound:       "No reservoirs of this type found",
	CompareHeader:  "Comparing reservoirs:",
	CompareColumns: []string{"#", "Name", "Type", "Surface area, m²"},
	NotComparable:  "Reservoirs are of different types, comparison is impossible",
	FirstLarger:    "Reservoir 1 has the larger surface area",
	SecondLarger:   "Reservoir 2 has the larger surface area",
	EqualArea:      "Reservoirs have the same surface area",

	TextReportTitle:   "=== SAVING TO TEXT FILE ===",
	BinaryReportTitle: "=== SAVING TO BINARY FILE ===",
	BinaryReportNote:  "Data for the binary file (simulated):",

	Goodbye:     "Goodbye!",
	DefaultKind: reservoir.DefaultKind,

	Labels: reservoir.EnglishLabels,
}

var (
	catalogs = []*Catalog{Ukrainian, English}
	matcher  = language.NewMatcher([]language.Tag{language.Ukrainian, language.English})
)

// For returns the catalog best matching lang (a BCP 47 tag such as "uk",
// "en-GB" or "uk-UA"). Unknown or empty input falls back to Ukrainian.
func For(lang string) *Catalog {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Ukrainian
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Ukrainian
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Ukrainian
	}
	return catalogs[idx]
}

// Supported reports whether lang resolves to a catalog other than by
// fallback.
func Supported(lang string) bool {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(tag)
	return conf != language.No
}

// Languages lists the base language codes with a catalog.
func Languages() []string {
	out := make([]string, 0, len(catalogs))
	for _, c := range catalogs {
		base, _ := c.Tag.Base()
		out = append(out, base.String())
	}
	return out
}
