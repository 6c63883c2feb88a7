package usecases

import (
	"errors"
	"log/slog"

	"github.com/samirrijal/mapposter/internal/core/domain"
	"github.com/samirrijal/mapposter/internal/core/ports"
)

// ThemeService resolves theme names to complete themes.
type ThemeService struct {
	store  ports.ThemeStore
	logger *slog.Logger
}

// NewThemeService creates a new ThemeService.
func NewThemeService(store ports.ThemeStore, logger *slog.Logger) *ThemeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ThemeService{store: store, logger: logger}
}

// Load returns the named theme with missing keys back-filled from the
// default theme. Unknown names yield the default theme and a warning;
// malformed theme files are returned as errors.
func (s *ThemeService) Load(name string) (domain.Theme, error) {
	values, err := s.store.Load(name)
	if errors.Is(err, domain.ErrThemeNotFound) {
		s.logger.Warn("theme not found, using default theme", "theme", name)
		return domain.DefaultTheme(), nil
	}
	if err != nil {
		return domain.Theme{}, err
	}
	return domain.NewTheme(values), nil
}

// List returns the available themes.
func (s *ThemeService) List() ([]domain.ThemeInfo, error) {
	return s.store.List()
}
