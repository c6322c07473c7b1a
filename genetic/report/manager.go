// Package report writes and reads run reports: the statistics logbook and Hall of Fame of finished runs.
package report

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manager handles save/load of run reports
type Manager struct {
	basePath string
}

// NewManager creates a manager with the given base directory
func NewManager(basePath string) *Manager {
	return &Manager{basePath: basePath}
}

// FilePath returns the path for a named report
func (m *Manager) FilePath(name string) string {
	return filepath.Join(m.basePath, name+".yaml")
}

// Exists checks if a report file exists
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.FilePath(name))
	return err == nil
}

// Save writes a report to disk
func (m *Manager) Save(name string, r RunReport) error {
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return errors.Wrap(err, "create report directory")
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrapf(err, "encode report %s", name)
	}

	return os.WriteFile(m.FilePath(name), data, 0644)
}

// Load reads a report from disk
func (m *Manager) Load(name string) (RunReport, error) {
	var r RunReport

	data, err := os.ReadFile(m.FilePath(name))
	if err != nil {
		return r, err
	}

	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, errors.Wrapf(err, "decode report %s", name)
	}

	return r, nil
}
