package definition

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestUnmarshalSectionResolvesEveryKind(t *testing.T) {
	cases := []struct {
		name string
		data string
		want SectionKind
	}{
		{"prose", `{"type":"prose","id":"about","content":"Some prose."}`, SectionProse},
		{"list", `{"type":"list","id":"caveats","items":[{"severity":"warning","text":"Careful"}]}`, SectionList},
		{"cards", `{"type":"cards","id":"tips","cards":[{"title":"T","description":"D"}]}`, SectionCards},
		{"code-example", `{"type":"code-example","id":"worked","description":"Example","examples":[{"title":"One","steps":["a","b"],"result":"r"}]}`, SectionCodeExample},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			section, err := UnmarshalSection([]byte(tc.data))
			if err != nil {
				t.Fatalf("UnmarshalSection() error = %v", err)
			}
			if section.Kind() != tc.want {
				t.Fatalf("Kind() = %q, want %q", section.Kind(), tc.want)
			}
		})
	}
}

func TestUnmarshalSectionRejectsUnknownKind(t *testing.T) {
	_, err := UnmarshalSection([]byte(`{"type":"video","id":"v"}`))
	if !errors.Is(err, ErrUnknownSectionKind) {
		t.Fatalf("UnmarshalSection() error = %v, want ErrUnknownSectionKind", err)
	}
}

func TestSectionMarshalRoundTrip(t *testing.T) {
	original := &ListSection{
		ID: "caveats",
		Items: []ListItem{
			{Severity: SeverityDanger, Text: "Do not rely on this alone"},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	decoded, err := UnmarshalSection(data)
	if err != nil {
		t.Fatalf("UnmarshalSection() error = %v", err)
	}
	list, ok := decoded.(*ListSection)
	if !ok {
		t.Fatalf("expected *ListSection, got %T", decoded)
	}
	if list.ID != original.ID || len(list.Items) != 1 || list.Items[0].Severity != SeverityDanger {
		t.Fatalf("round trip mismatch: %+v", list)
	}
}

func TestCalculatorUnmarshalDecodesEducationUnion(t *testing.T) {
	data := []byte(`{
		"id": "bmi",
		"category": "health",
		"title": "BMI Calculator",
		"inputs": [{"id":"weight","kind":"number","label":"Weight"}],
		"results": [{"id":"bmi","kind":"number","label":"Your BMI"}],
		"education": [
			{"type":"prose","id":"about","content":"BMI is a screening measure."},
			{"type":"cards","id":"tips","cards":[{"title":"Stay active","description":"Move"}]}
		],
		"faqs": [{"question":"Q","answer":"A"}]
	}`)

	var calc Calculator
	if err := json.Unmarshal(data, &calc); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if calc.ID != "bmi" || calc.Category != CategoryHealth {
		t.Fatalf("unexpected calculator %+v", calc)
	}
	if len(calc.Education) != 2 {
		t.Fatalf("expected 2 education sections, got %d", len(calc.Education))
	}
	if _, ok := calc.Education[0].(*ProseSection); !ok {
		t.Fatalf("expected prose section, got %T", calc.Education[0])
	}
	if _, ok := calc.Education[1].(*CardsSection); !ok {
		t.Fatalf("expected cards section, got %T", calc.Education[1])
	}
	if err := calc.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestCalculatorUnmarshalRejectsBadSection(t *testing.T) {
	data := []byte(`{
		"id": "bmi",
		"category": "health",
		"title": "BMI",
		"education": [{"type":"hologram","id":"x"}]
	}`)

	var calc Calculator
	err := json.Unmarshal(data, &calc)
	if !errors.Is(err, ErrUnknownSectionKind) {
		t.Fatalf("Unmarshal() error = %v, want ErrUnknownSectionKind", err)
	}
}
