package slugs

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"
)

// URLResolverOptions configures the go-urlkit backed URL builder.
type URLResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LocaleGroups map[string]string
	Route        string
	SlugParam    string
}

// URLResolver builds calculator URLs using a go-urlkit RouteManager. Each
// locale may map to its own route group (e.g. "frontend.es") so localized
// path prefixes stay in route configuration rather than in code.
type URLResolver struct {
	manager *urlkit.RouteManager

	defaultGroup string
	localeGroups map[string]string
	route        string
	slugParam    string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLResolver constructs a resolver backed by go-urlkit.
func NewURLResolver(opts URLResolverOptions) *URLResolver {
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}
	if opts.Route == "" {
		opts.Route = "calculator"
	}

	return &URLResolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		route:        strings.TrimSpace(opts.Route),
		slugParam:    opts.SlugParam,
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// CalculatorURL builds the public URL for a localized slug.
func (r *URLResolver) CalculatorURL(locale, slugValue string) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("slugs: route manager not configured")
	}

	groupPath := r.defaultGroup
	localeKey := strings.ToLower(strings.TrimSpace(locale))
	if r.localeGroups != nil {
		if path, ok := r.localeGroups[localeKey]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}
	if groupPath == "" {
		return "", fmt.Errorf("slugs: no route group for locale %q", locale)
	}

	group, err := r.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, r.route)
	if err != nil {
		return "", err
	}

	builder.WithParam(r.slugParam, slugValue)
	return builder.Build()
}

func (r *URLResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *URLResolver) safeBuilder(group *urlkit.Group, route string) (*urlkit.Builder, error) {
	if group == nil {
		return nil, fmt.Errorf("slugs: urlkit group is nil")
	}
	var (
		builder *urlkit.Builder
		err     error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("slugs: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, err
}

func lookupGroup(manager *urlkit.RouteManager, name string) (*urlkit.Group, error) {
	if manager == nil {
		return nil, fmt.Errorf("slugs: route manager not configured")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("slugs: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, err
}

func lookupChildGroup(parent *urlkit.Group, name string) (*urlkit.Group, error) {
	if parent == nil {
		return nil, fmt.Errorf("slugs: parent group is nil")
	}
	var (
		group *urlkit.Group
		err   error
	)
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("slugs: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, err
}
