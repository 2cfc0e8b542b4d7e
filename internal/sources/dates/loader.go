// Package dates loads the important Islamic dates table. The compiled-in
// table is used unless YAML overrides are configured, mirroring how optional
// data files gate features elsewhere in the shell.
package dates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sulemanahsancui/quran-pak/internal/domain"
)

type Loader struct {
	path string // empty = compiled-in table only
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the Islamic dates table. With no override file configured the
// built-in table is returned; an override file replaces it entirely.
func (l *Loader) Load() ([]domain.ImportantDate, error) {
	if l.path == "" {
		return domain.ImportantDates(), nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dates file: %w", err)
	}

	var dates []domain.ImportantDate
	if err := yaml.Unmarshal(data, &dates); err != nil {
		return nil, fmt.Errorf("failed to parse dates file: %w", err)
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("dates file %s contains no entries", l.path)
	}

	for _, d := range dates {
		if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 30 || d.Name == "" {
			return nil, fmt.Errorf("invalid date entry %+v in %s", d, l.path)
		}
	}
	return dates, nil
}
