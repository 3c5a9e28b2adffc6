package definition

import (
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// Category is the closed set of calculator categories used for grouping and
// localized URL prefixes.
type Category string

const (
	CategoryFinance    Category = "finance"
	CategoryHealth     Category = "health"
	CategoryMath       Category = "math"
	CategoryDate       Category = "date"
	CategoryConversion Category = "conversion"
	CategoryEveryday   Category = "everyday"
)

// Categories returns the closed category set in declaration order.
func Categories() []Category {
	return []Category{
		CategoryFinance,
		CategoryHealth,
		CategoryMath,
		CategoryDate,
		CategoryConversion,
		CategoryEveryday,
	}
}

// IsValid reports whether the category belongs to the closed set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// InputKind identifies how an input is rendered and which default strings it
// carries.
type InputKind string

const (
	InputNumber InputKind = "number"
	InputSelect InputKind = "select"
	InputSlider InputKind = "slider"
	InputDate   InputKind = "date"
	InputText   InputKind = "text"
)

// ResultKind identifies how a result field is formatted.
type ResultKind string

const (
	ResultNumber   ResultKind = "number"
	ResultCurrency ResultKind = "currency"
	ResultPercent  ResultKind = "percent"
	ResultText     ResultKind = "text"
)

// Option is one selectable choice on a select/slider input. Value is the
// stable key; Label is the default (English) string.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Input describes one calculator input and its default strings.
type Input struct {
	ID          string    `json:"id"`
	Kind        InputKind `json:"kind"`
	Label       string    `json:"label"`
	Help        string    `json:"help,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Result describes one output field and its default label.
type Result struct {
	ID    string     `json:"id"`
	Kind  ResultKind `json:"kind"`
	Label string     `json:"label"`
}

// InfoCard is a short informational card with ordered item strings.
type InfoCard struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ReferenceBlock is a block of reference data (tables, lookup values) with
// ordered item strings.
type ReferenceBlock struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// FAQ is one question/answer pair. FAQs are identified by index, not id.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Reference is a bibliographic citation. References are never translated.
type Reference struct {
	Title   string `json:"title"`
	Authors string `json:"authors,omitempty"`
	Source  string `json:"source,omitempty"`
	URL     string `json:"url,omitempty"`
	Year    int    `json:"year,omitempty"`
}

// Calculator is the language-agnostic structural definition of one
// calculator, authored once and loaded at process start. Every string field
// is the default (English) value; per-locale overlays replace them by key
// path at merge time. Definitions are immutable after registration.
type Calculator struct {
	ID            string                  `json:"id"`
	Category      Category                `json:"category"`
	Title         string                  `json:"title"`
	Inputs        []Input                 `json:"inputs,omitempty"`
	Results       []Result                `json:"results,omitempty"`
	InfoCards     []InfoCard              `json:"info_cards,omitempty"`
	ReferenceData []ReferenceBlock        `json:"reference_data,omitempty"`
	Education     []EducationSection      `json:"education,omitempty"`
	FAQs          []FAQ                   `json:"faqs,omitempty"`
	References    []Reference             `json:"references,omitempty"`
	Calculate     interfaces.CalculateFunc `json:"-"`
}
