// Package catalog provides the localized vocabulary of complaint categories.
// Labels come from JSON locale files; the store itself accepts free-text
// types, so the catalog is presentation vocabulary only.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"civigo/backend/internal/config"
)

// CategoryKeys fixes the order categories are presented in. Keys are stable
// across locales; only labels translate.
var CategoryKeys = []string{
	"pothole",
	"open_manhole",
	"broken_streetlight",
	"damaged_sidewalk",
	"garbage",
	"flooding",
	"other",
}

// Category pairs a stable key with its display label in some locale.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Catalog holds category labels per language, loaded once at startup.
type Catalog struct {
	labels map[string]map[string]string
	mu     sync.RWMutex
}

// Load reads every <lang>.json file in the given directory. Each file maps
// category keys to display labels for that language.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{labels: make(map[string]map[string]string)}

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(file.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(dir, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file.Name(), err)
		}
		var labels map[string]string
		if err := json.Unmarshal(data, &labels); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file.Name(), err)
		}
		c.labels[lang] = labels
	}

	if _, ok := c.labels[config.DefaultLocale]; !ok {
		return nil, fmt.Errorf("missing default locale %q in %s", config.DefaultLocale, dir)
	}
	return c, nil
}

// Categories returns every category in presentation order, labeled in the
// requested language. Unknown languages and missing labels fall back to the
// default locale, then to the raw key.
func (c *Catalog) Categories(lang string) []Category {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Category, 0, len(CategoryKeys))
	for _, key := range CategoryKeys {
		out = append(out, Category{Key: key, Label: c.label(lang, key)})
	}
	return out
}

func (c *Catalog) label(lang, key string) string {
	if labels, ok := c.labels[lang]; ok {
		if v, ok := labels[key]; ok {
			return v
		}
	}
	if labels, ok := c.labels[config.DefaultLocale]; ok {
		if v, ok := labels[key]; ok {
			return v
		}
	}
	return key
}
