package di

import (
	"io/fs"
	"os"
	"strings"
	"time"

	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	admintranslations "github.com/payjnv/kalcufy-sub010/internal/admin/translations"
	"github.com/payjnv/kalcufy-sub010/internal/audit"
	"github.com/payjnv/kalcufy-sub010/internal/definition"
	"github.com/payjnv/kalcufy-sub010/internal/logging"
	"github.com/payjnv/kalcufy-sub010/internal/logging/gologger"
	"github.com/payjnv/kalcufy-sub010/internal/markdown"
	"github.com/payjnv/kalcufy-sub010/internal/runtimeconfig"
	"github.com/payjnv/kalcufy-sub010/internal/slugs"
	"github.com/payjnv/kalcufy-sub010/internal/translation"
	"github.com/payjnv/kalcufy-sub010/pkg/interfaces"
)

// Container wires engine dependencies. Defaults favour in-memory adapters so
// hosts can embed the engine without a database.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	translationsFS fs.FS

	definitions      *definition.Registry
	translationCache *translation.Cache
	loader           *translation.Loader
	renderer         *markdown.Renderer
	translationSvc   *translation.Service

	slugRepo     slugs.Repository
	slugRegistry *slugs.Registry
	routeManager *urlkit.RouteManager
	urlResolver  *slugs.URLResolver

	auditRecorder audit.Recorder
	adminSvc      *admintranslations.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB provides a database connection for slug persistence.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the repository cache service and key serializer.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithTranslationsFS overrides the filesystem translations are read from.
// Defaults to the configured translations directory on disk.
func WithTranslationsFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.translationsFS = fsys
	}
}

// WithDefinitionRegistry overrides the calculator definition registry.
func WithDefinitionRegistry(registry *definition.Registry) Option {
	return func(c *Container) {
		c.definitions = registry
	}
}

// WithSlugRepository overrides the slug persistence adapter.
func WithSlugRepository(repo slugs.Repository) Option {
	return func(c *Container) {
		c.slugRepo = repo
	}
}

// WithAuditRecorder overrides the audit recorder used by admin services.
func WithAuditRecorder(recorder audit.Recorder) Option {
	return func(c *Container) {
		c.auditRecorder = recorder
	}
}

// WithLoggerProvider overrides the logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// NewContainer validates the configuration and assembles the engine graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:           cfg,
		cacheTTL:         cacheTTL,
		definitions:      definition.NewRegistry(),
		translationCache: translation.NewCache(),
		renderer:         markdown.NewRenderer(),
		auditRecorder:    audit.NewInMemoryRecorder(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRoutes()
	c.configureSlugComponents()
	if err := c.configureTranslations(); err != nil {
		return nil, err
	}

	c.adminSvc = admintranslations.NewService(c.translationSvc, c.auditRecorder)

	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRoutes() {
	routesCfg := c.Config.Routes
	if routesCfg.RouteConfig == nil {
		return
	}

	manager := urlkit.NewRouteManager(routesCfg.RouteConfig)
	c.routeManager = manager

	c.urlResolver = slugs.NewURLResolver(slugs.URLResolverOptions{
		Manager:      manager,
		DefaultGroup: strings.TrimSpace(routesCfg.DefaultGroup),
		LocaleGroups: routesCfg.LocaleGroups,
		Route:        strings.TrimSpace(routesCfg.Route),
		SlugParam:    routesCfg.SlugParam,
	})
}

func (c *Container) configureSlugComponents() {
	if c.slugRepo == nil {
		if c.bunDB != nil {
			c.slugRepo = slugs.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.slugRepo = slugs.NewMemoryRepository()
		}
	}

	registryOpts := []slugs.RegistryOption{}
	if c.urlResolver != nil {
		registryOpts = append(registryOpts, slugs.WithURLResolver(c.urlResolver))
	}
	c.slugRegistry = slugs.NewRegistry(slugs.Config{
		DefaultLocale: c.Config.I18N.DefaultLocale,
		Locales:       c.Config.I18N.Locales,
	}, registryOpts...)
}

func (c *Container) configureTranslations() error {
	if c.translationsFS == nil {
		c.translationsFS = os.DirFS(c.Config.I18N.TranslationsDir)
	}

	c.loader = translation.NewLoader(c.translationsFS, translation.Config{
		DefaultLocale:    c.Config.I18N.DefaultLocale,
		Locales:          c.Config.I18N.Locales,
		MandatoryLocales: c.Config.I18N.MandatoryLocales,
	},
		translation.WithCache(c.translationCache),
		translation.WithLogger(logging.TranslationsLogger(c.loggerProvider)),
	)

	svc, err := translation.NewService(c.definitions, c.loader,
		translation.WithServiceLogger(logging.TranslationsLogger(c.loggerProvider)),
		translation.WithRenderer(c.renderer),
	)
	if err != nil {
		return err
	}
	c.translationSvc = svc
	return nil
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Definitions returns the calculator definition registry.
func (c *Container) Definitions() *definition.Registry {
	return c.definitions
}

// TranslationService returns the translation resolution service.
func (c *Container) TranslationService() *translation.Service {
	return c.translationSvc
}

// TranslationLoader returns the translation file loader.
func (c *Container) TranslationLoader() *translation.Loader {
	return c.loader
}

// SlugRegistry returns the in-memory slug registry.
func (c *Container) SlugRegistry() *slugs.Registry {
	return c.slugRegistry
}

// SlugRepository returns the slug persistence adapter.
func (c *Container) SlugRepository() slugs.Repository {
	return c.slugRepo
}

// RouteManager returns the urlkit route manager when routing is configured.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// Renderer returns the markdown renderer.
func (c *Container) Renderer() *markdown.Renderer {
	return c.renderer
}

// AuditRecorder returns the audit recorder used by admin services.
func (c *Container) AuditRecorder() audit.Recorder {
	return c.auditRecorder
}

// TranslationAdminService returns the admin maintenance service.
func (c *Container) TranslationAdminService() *admintranslations.Service {
	return c.adminSvc
}
