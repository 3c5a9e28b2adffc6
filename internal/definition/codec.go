package definition

import (
	"encoding/json"
	"fmt"
)

// The wire format for education sections keeps the original "type"
// discriminator so definition files stay readable to content authors, while
// decoding always lands on one of the sealed variants.

type sectionEnvelope struct {
	Type SectionKind `json:"type"`
}

func (s *ProseSection) MarshalJSON() ([]byte, error) {
	type alias ProseSection
	return json.Marshal(struct {
		Type SectionKind `json:"type"`
		*alias
	}{Type: SectionProse, alias: (*alias)(s)})
}

func (s *ListSection) MarshalJSON() ([]byte, error) {
	type alias ListSection
	return json.Marshal(struct {
		Type SectionKind `json:"type"`
		*alias
	}{Type: SectionList, alias: (*alias)(s)})
}

func (s *CardsSection) MarshalJSON() ([]byte, error) {
	type alias CardsSection
	return json.Marshal(struct {
		Type SectionKind `json:"type"`
		*alias
	}{Type: SectionCards, alias: (*alias)(s)})
}

func (s *CodeExampleSection) MarshalJSON() ([]byte, error) {
	type alias CodeExampleSection
	return json.Marshal(struct {
		Type SectionKind `json:"type"`
		*alias
	}{Type: SectionCodeExample, alias: (*alias)(s)})
}

// UnmarshalSection decodes one education section from its wire form,
// rejecting unknown discriminators instead of skipping them.
func UnmarshalSection(data []byte) (EducationSection, error) {
	var env sectionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("definition: decode section envelope: %w", err)
	}

	switch env.Type {
	case SectionProse:
		var s ProseSection
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("definition: decode prose section: %w", err)
		}
		return &s, nil
	case SectionList:
		var s ListSection
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("definition: decode list section: %w", err)
		}
		return &s, nil
	case SectionCards:
		var s CardsSection
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("definition: decode cards section: %w", err)
		}
		return &s, nil
	case SectionCodeExample:
		var s CodeExampleSection
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("definition: decode code-example section: %w", err)
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("definition: %w: %q", ErrUnknownSectionKind, string(env.Type))
	}
}

// UnmarshalJSON decodes a calculator definition, resolving each education
// section through its type discriminator.
func (c *Calculator) UnmarshalJSON(data []byte) error {
	type alias Calculator
	aux := struct {
		Education []json.RawMessage `json:"education,omitempty"`
		*alias
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(aux.Education) == 0 {
		c.Education = nil
		return nil
	}

	sections := make([]EducationSection, 0, len(aux.Education))
	for i, raw := range aux.Education {
		section, err := UnmarshalSection(raw)
		if err != nil {
			return fmt.Errorf("definition: education[%d]: %w", i, err)
		}
		sections = append(sections, section)
	}
	c.Education = sections
	return nil
}
