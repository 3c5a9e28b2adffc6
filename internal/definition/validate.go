package definition

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the definition's structural invariants: required default
// strings, closed category membership, and id uniqueness within every
// collection. All findings are accumulated into a single
// ConfigValidationError so authors fix the definition in one pass.
func (c *Calculator) Validate() error {
	if c == nil {
		return ErrCalculatorRequired
	}

	issues := make([]string, 0)

	err := validation.ValidateStruct(c,
		validation.Field(&c.ID, validation.Required.Error("calculator id is required")),
		validation.Field(&c.Title, validation.Required.Error("default title is required")),
		validation.Field(&c.Category, validation.Required, validation.By(categoryRule)),
	)
	if err != nil {
		issues = append(issues, err.Error())
	}

	issues = append(issues, duplicateIssues("inputs", inputIDs(c.Inputs))...)
	issues = append(issues, duplicateIssues("results", resultIDs(c.Results))...)
	issues = append(issues, duplicateIssues("info cards", cardIDs(c.InfoCards))...)
	issues = append(issues, duplicateIssues("reference blocks", blockIDs(c.ReferenceData))...)
	issues = append(issues, duplicateIssues("education sections", sectionIDs(c.Education))...)

	for _, input := range c.Inputs {
		if strings.TrimSpace(input.Label) == "" {
			issues = append(issues, fmt.Sprintf("input %q: default label is required", input.ID))
		}
		issues = append(issues, duplicateIssues(fmt.Sprintf("input %q options", input.ID), optionValues(input.Options))...)
	}
	for _, result := range c.Results {
		if strings.TrimSpace(result.Label) == "" {
			issues = append(issues, fmt.Sprintf("result %q: default label is required", result.ID))
		}
	}
	for _, section := range c.Education {
		if strings.TrimSpace(section.SectionID()) == "" {
			issues = append(issues, fmt.Sprintf("education section of kind %q: id is required", section.Kind()))
		}
	}
	for i, faq := range c.FAQs {
		if strings.TrimSpace(faq.Question) == "" {
			issues = append(issues, fmt.Sprintf("faq %d: default question is required", i))
		}
		if strings.TrimSpace(faq.Answer) == "" {
			issues = append(issues, fmt.Sprintf("faq %d: default answer is required", i))
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ConfigValidationError{CalculatorID: c.ID, Issues: issues}
}

func categoryRule(value any) error {
	category, ok := value.(Category)
	if !ok || !category.IsValid() {
		return validation.NewError("definition.category_invalid", "category is not in the closed set")
	}
	return nil
}

func duplicateIssues(collection string, ids []string) []string {
	seen := map[string]struct{}{}
	reported := map[string]struct{}{}
	issues := make([]string, 0)
	for _, id := range ids {
		key := strings.TrimSpace(id)
		if key == "" {
			issues = append(issues, fmt.Sprintf("%s: empty id", collection))
			continue
		}
		if _, dup := seen[key]; dup {
			if _, done := reported[key]; !done {
				issues = append(issues, fmt.Sprintf("%s: duplicate id %q", collection, key))
				reported[key] = struct{}{}
			}
			continue
		}
		seen[key] = struct{}{}
	}
	return issues
}

func inputIDs(inputs []Input) []string {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		ids = append(ids, in.ID)
	}
	return ids
}

func resultIDs(results []Result) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func cardIDs(cards []InfoCard) []string {
	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		ids = append(ids, card.ID)
	}
	return ids
}

func blockIDs(blocks []ReferenceBlock) []string {
	ids := make([]string, 0, len(blocks))
	for _, block := range blocks {
		ids = append(ids, block.ID)
	}
	return ids
}

func sectionIDs(sections []EducationSection) []string {
	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.SectionID())
	}
	return ids
}

func optionValues(options []Option) []string {
	values := make([]string, 0, len(options))
	for _, opt := range options {
		values = append(values, opt.Value)
	}
	return values
}
