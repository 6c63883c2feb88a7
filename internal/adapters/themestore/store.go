package themestore

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/samirrijal/mapposter/internal/core/domain"
)

// Extensions are the theme file formats, in lookup order.
var Extensions = []string{"json", "yaml", "yml", "toml"}

// Store implements ports.ThemeStore on a directory with one file per
// theme. The file stem is the theme ID.
type Store struct {
	dir    string
	logger *slog.Logger
}

// New creates a Store reading themes from dir.
func New(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Load returns the recognized keys present in the theme file for name.
func (s *Store) Load(name string) (map[string]string, error) {
	path, ok := s.find(name)
	if !ok {
		return nil, domain.ErrThemeNotFound
	}
	return readTheme(path)
}

// List returns every theme file that parses, sorted by ID. Unparsable
// files are skipped with a warning. A missing directory yields no themes.
func (s *Store) List() ([]domain.ThemeInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read theme directory %s", s.dir)
	}

	seen := make(map[string]bool)
	var themes []domain.ThemeInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, ok := themeID(entry.Name())
		if !ok || seen[id] {
			continue
		}
		path, _ := s.find(id)
		values, err := readTheme(path)
		if err != nil {
			s.logger.Warn("skipping invalid theme file", "path", path, "error", err)
			continue
		}
		seen[id] = true

		info := domain.ThemeInfo{ID: id, Display: id, Description: values[domain.ThemeKeyDescription]}
		if display := values[domain.ThemeKeyName]; display != "" {
			info.Display = display
		}
		themes = append(themes, info)
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].ID < themes[j].ID })
	return themes, nil
}

// find returns the first existing file for name in extension order.
func (s *Store) find(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", false
	}
	for _, ext := range Extensions {
		path := filepath.Join(s.dir, name+"."+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func themeID(fileName string) (string, bool) {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	for _, known := range Extensions {
		if ext == known {
			return strings.TrimSuffix(fileName, filepath.Ext(fileName)), true
		}
	}
	return "", false
}

func readTheme(path string) (map[string]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "parse theme %s", path)
	}

	values := make(map[string]string)
	for _, key := range domain.ThemeKeys {
		if v.IsSet(key) {
			values[key] = v.GetString(key)
		}
	}
	return values, nil
}
