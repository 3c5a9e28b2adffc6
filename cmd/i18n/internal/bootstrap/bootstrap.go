package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kalcufy "github.com/payjnv/kalcufy-sub010"
	"github.com/payjnv/kalcufy-sub010/internal/commands"
	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// Options capture the flags shared by the i18n command line tools.
type Options struct {
	DefinitionsDir   string
	TranslationsDir  string
	DefaultLocale    string
	Locales          []string
	MandatoryLocales []string
	LogLevel         string
}

// Module bundles the constructed engine with CLI-scoped loggers.
type Module struct {
	Engine        *kalcufy.Engine
	Logger        interfaces.Logger
	CommandLogger interfaces.Logger
}

// BuildEngine assembles an engine from CLI options and registers every
// calculator definition found under the definitions directory.
func BuildEngine(opts Options) (*Module, error) {
	cfg := kalcufy.DefaultConfig()
	if strings.TrimSpace(opts.TranslationsDir) != "" {
		cfg.I18N.TranslationsDir = opts.TranslationsDir
	}
	if strings.TrimSpace(opts.DefaultLocale) != "" {
		cfg.I18N.DefaultLocale = opts.DefaultLocale
	}
	if len(opts.Locales) > 0 {
		cfg.I18N.Locales = opts.Locales
	}
	if len(opts.MandatoryLocales) > 0 {
		cfg.I18N.MandatoryLocales = opts.MandatoryLocales
	}
	if strings.TrimSpace(opts.LogLevel) != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	engine, err := kalcufy.New(cfg)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(opts.DefinitionsDir) != "" {
		if err := registerDefinitions(engine, opts.DefinitionsDir); err != nil {
			return nil, err
		}
	}

	return &Module{
		Engine:        engine,
		Logger:        engine.Logger("kalcufy.cli"),
		CommandLogger: commands.CommandLogger(engine.Container().LoggerProvider(), "translations"),
	}, nil
}

// SplitLocales turns a comma separated flag value into a locale slice.
func SplitLocales(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	locales := make([]string, 0, len(parts))
	for _, part := range parts {
		if locale := strings.ToLower(strings.TrimSpace(part)); locale != "" {
			locales = append(locales, locale)
		}
	}
	return locales
}

func registerDefinitions(engine *kalcufy.Engine, dir string) error {
	ctx := context.Background()
	return filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read definition %s: %w", path, err)
		}

		var calc definition.Calculator
		if err := json.Unmarshal(data, &calc); err != nil {
			return fmt.Errorf("decode definition %s: %w", path, err)
		}

		if err := engine.Register(ctx, &calc, nil); err != nil {
			return fmt.Errorf("register definition %s: %w", path, err)
		}
		return nil
	})
}
