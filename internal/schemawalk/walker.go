// Package schemawalk enumerates the required translation key paths of a
// calculator definition. The definition is the single source of truth for the
// required shape; overlays are strictly additive, so every downstream
// consumer (merger, validator, template generator) walks the definition, not
// the translation.
package schemawalk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/payjnv/kalcufy-sub010/internal/definition"
)

// Path pairs one required dotted key with the definition's default string for
// that key. Carrying the default alongside the key lets the merger and the
// template generator resolve fallbacks without a second reflective walk.
type Path struct {
	Key     string
	Default string
}

// Required returns the ordered list of required key paths for a definition.
// The enumeration is pure and deterministic: two calls over the same
// definition yield identical lists, which missing-key diffing depends on.
func Required(calc *definition.Calculator) []Path {
	if calc == nil {
		return nil
	}

	paths := make([]Path, 0, 64)
	add := func(key, def string) {
		paths = append(paths, Path{Key: key, Default: def})
	}

	add("calculator.title", calc.Title)

	for _, input := range calc.Inputs {
		prefix := "inputs." + input.ID
		add(prefix+".label", input.Label)
		if strings.TrimSpace(input.Help) != "" {
			add(prefix+".help", input.Help)
		}
		if strings.TrimSpace(input.Placeholder) != "" {
			add(prefix+".placeholder", input.Placeholder)
		}
		for _, opt := range input.Options {
			add(prefix+".options."+opt.Value, opt.Label)
		}
	}

	for _, result := range calc.Results {
		add("results."+result.ID, result.Label)
	}

	for _, card := range calc.InfoCards {
		prefix := "info." + card.ID
		add(prefix+".title", card.Title)
		for i, item := range card.Items {
			add(prefix+".items."+strconv.Itoa(i), item)
		}
	}

	for _, block := range calc.ReferenceData {
		prefix := "reference." + block.ID
		add(prefix+".title", block.Title)
		for i, item := range block.Items {
			add(prefix+".items."+strconv.Itoa(i), item)
		}
	}

	for _, section := range calc.Education {
		prefix := "education." + section.SectionID()
		switch s := section.(type) {
		case *definition.ProseSection:
			add(prefix+".content", s.Content)
		case *definition.ListSection:
			for i, item := range s.Items {
				add(prefix+".items."+strconv.Itoa(i)+".text", item.Text)
			}
		case *definition.CardsSection:
			for i, card := range s.Cards {
				base := prefix + ".cards." + strconv.Itoa(i)
				add(base+".title", card.Title)
				add(base+".description", card.Description)
			}
		case *definition.CodeExampleSection:
			add(prefix+".description", s.Description)
			for i, example := range s.Examples {
				base := prefix + ".examples." + strconv.Itoa(i)
				add(base+".title", example.Title)
				for j, step := range example.Steps {
					add(base+".steps."+strconv.Itoa(j), step)
				}
				add(base+".result", example.Result)
			}
		default:
			// The union is sealed; reaching this means a new variant was
			// added without teaching the walker about it.
			panic(fmt.Sprintf("schemawalk: unhandled education section kind %q", section.Kind()))
		}
	}

	for i, faq := range calc.FAQs {
		base := "faq." + strconv.Itoa(i)
		add(base+".question", faq.Question)
		add(base+".answer", faq.Answer)
	}

	return paths
}

// Keys returns just the required key strings, in walker order.
func Keys(calc *definition.Calculator) []string {
	paths := Required(calc)
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, p.Key)
	}
	return keys
}
