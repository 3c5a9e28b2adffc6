package translation

import (
	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/keypath"
	"github.com/payjnv/kalcufy-sub010/internal/schemawalk"
)

// Validate classifies every required key path of the definition against one
// locale's overlay: present, missing (no node at the path), or empty (node
// present but blank). The three sets are disjoint and cover the walker's
// enumeration exactly.
func Validate(raw RawTranslation, calc *definition.Calculator, locale string) Report {
	report := Report{
		Locale:      locale,
		MissingKeys: make([]string, 0),
		EmptyKeys:   make([]string, 0),
	}

	for _, key := range schemawalk.Keys(calc) {
		value, ok := keypath.Get(map[string]any(raw), key)
		switch {
		case !ok:
			report.MissingKeys = append(report.MissingKeys, key)
		case !keypath.HasValue(value):
			report.EmptyKeys = append(report.EmptyKeys, key)
		}
	}

	report.IsValid = len(report.MissingKeys) == 0 && len(report.EmptyKeys) == 0
	return report
}

// ValidateAll runs Validate for every configured locale and aggregates the
// findings into one summary so a single run surfaces all problems across all
// locales. A locale absent from overlays counts as all keys missing; that
// invalidates the summary only when the locale is mandatory.
func ValidateAll(calc *definition.Calculator, cfg Config, overlays map[string]RawTranslation) Summary {
	keys := schemawalk.Keys(calc)
	total := len(keys)

	summary := Summary{
		Reports:  make([]Report, 0, len(cfg.Locales)),
		Progress: make([]Progress, 0, len(cfg.Locales)),
		IsValid:  true,
	}
	if calc != nil {
		summary.CalculatorID = calc.ID
	}

	for _, locale := range cfg.Locales {
		raw, present := overlays[locale]

		var report Report
		if present {
			report = Validate(raw, calc, locale)
		} else {
			// No overlay at all is equivalent to every key missing.
			missing := make([]string, len(keys))
			copy(missing, keys)
			report = Report{
				Locale:      locale,
				MissingKeys: missing,
				EmptyKeys:   make([]string, 0),
				IsValid:     total == 0,
			}
		}

		if cfg.IsMandatory(locale) && len(report.MissingKeys) > 0 {
			summary.IsValid = false
		}

		summary.Reports = append(summary.Reports, report)
		summary.Progress = append(summary.Progress, Progress{
			Locale:        locale,
			CompletedKeys: total - len(report.MissingKeys) - len(report.EmptyKeys),
			TotalKeys:     total,
		})
	}

	return summary
}

// Findings converts a report into the error taxonomy: a MissingKeysError for
// the missing set and an EmptyValueError for the empty set. Both are
// reporting artifacts; resolution never blocks on them because the merger's
// default fallback always yields a renderable bundle.
func Findings(report Report, calculatorID string) []error {
	findings := make([]error, 0, 2)
	if len(report.MissingKeys) > 0 {
		findings = append(findings, &MissingKeysError{
			CalculatorID: calculatorID,
			Locale:       report.Locale,
			Keys:         report.MissingKeys,
		})
	}
	if len(report.EmptyKeys) > 0 {
		findings = append(findings, &EmptyValueError{
			CalculatorID: calculatorID,
			Locale:       report.Locale,
			Keys:         report.EmptyKeys,
		})
	}
	return findings
}
