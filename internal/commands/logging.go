package commands

import (
	"strings"

	"github.com/payjnv/kalcufy-sub010/internal/logging"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// CommandLogger returns the shared command-handler logger enriched with
// structured fields so executions are attributable to their module.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	return logging.WithFields(logging.CommandsLogger(provider), map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
