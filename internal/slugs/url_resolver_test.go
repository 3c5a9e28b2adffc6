package slugs

import (
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"
)

func newTestRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"calculator": "/:slug",
				},
				Groups: []urlkit.GroupConfig{
					{
						Name: "es",
						Path: "/es",
						Paths: map[string]string{
							"calculator": "/:slug",
						},
					},
				},
			},
		},
	})
}

func TestURLResolverBuildsLocalizedURLs(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{
		Manager:      newTestRouteManager(),
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{"es": "frontend.es"},
	})

	url, err := resolver.CalculatorURL("en", "age-calculator")
	if err != nil {
		t.Fatalf("CalculatorURL() error = %v", err)
	}
	if !strings.Contains(url, "age-calculator") || !strings.HasPrefix(url, "https://example.com") {
		t.Fatalf("en url = %q", url)
	}

	esURL, err := resolver.CalculatorURL("es", "calculadora-de-edad")
	if err != nil {
		t.Fatalf("CalculatorURL() error = %v", err)
	}
	if !strings.Contains(esURL, "/es/") || !strings.Contains(esURL, "calculadora-de-edad") {
		t.Fatalf("es url = %q", esURL)
	}
}

func TestURLResolverUnknownGroupErrors(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{
		Manager:      newTestRouteManager(),
		DefaultGroup: "backend",
	})

	if _, err := resolver.CalculatorURL("en", "age-calculator"); err == nil {
		t.Fatal("expected an error for an unregistered group")
	}
}

func TestURLResolverRequiresManager(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{})
	if _, err := resolver.CalculatorURL("en", "age-calculator"); err == nil {
		t.Fatal("expected an error without a route manager")
	}
}

func TestRegistryAlternateURLsWithResolver(t *testing.T) {
	resolver := NewURLResolver(URLResolverOptions{
		Manager:      newTestRouteManager(),
		DefaultGroup: "frontend",
		LocaleGroups: map[string]string{"es": "frontend.es"},
	})

	registry := NewRegistry(Config{
		DefaultLocale: "en",
		Locales:       []string{"en", "es"},
	}, WithURLResolver(resolver))
	if err := registry.Register(ageEntry()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	urls, err := registry.AlternateURLs("age")
	if err != nil {
		t.Fatalf("AlternateURLs() error = %v", err)
	}
	if len(urls) != 2 {
		t.Fatalf("urls = %v", urls)
	}
	if !strings.HasPrefix(urls[0].URL, "https://example.com") {
		t.Fatalf("en url = %q", urls[0].URL)
	}
	if !strings.Contains(urls[1].URL, "/es/") {
		t.Fatalf("es url = %q", urls[1].URL)
	}
}
