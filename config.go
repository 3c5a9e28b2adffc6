package kalcufy

import "github.com/payjnv/kalcufy-sub010/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired   = runtimeconfig.ErrDefaultLocaleRequired
	ErrDefaultLocaleUnknown    = runtimeconfig.ErrDefaultLocaleUnknown
	ErrMandatoryLocaleUnknown  = runtimeconfig.ErrMandatoryLocaleUnknown
	ErrTranslationsDirRequired = runtimeconfig.ErrTranslationsDirRequired
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrCacheTTLInvalid         = runtimeconfig.ErrCacheTTLInvalid
)

type (
	Config        = runtimeconfig.Config
	I18NConfig    = runtimeconfig.I18NConfig
	RoutesConfig  = runtimeconfig.RoutesConfig
	CacheConfig   = runtimeconfig.CacheConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
