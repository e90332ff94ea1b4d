// Package manifest keeps a small on-disk history of table generation runs,
// so regenerated reports can be traced back to the input they came from.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/langbench/accutable/internal/utils"
)

// maxRuns bounds the history; oldest entries are dropped first.
const maxRuns = 50

// Entry records one successful table write.
type Entry struct {
	ID         string    `yaml:"id"`
	Timestamp  time.Time `yaml:"timestamp"`
	InputPath  string    `yaml:"input_path"`
	OutputPath string    `yaml:"output_path"`
	Languages  int       `yaml:"languages"`
	Columns    int       `yaml:"columns"`
}

// Manifest is the persisted run history.
type Manifest struct {
	Runs []Entry `yaml:"runs"`
}

// Load reads the manifest at path. A missing file is an empty manifest.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Append adds an entry, assigning an ID and timestamp if unset, and trims
// the history to maxRuns.
func (m *Manifest) Append(e Entry) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	m.Runs = append(m.Runs, e)
	if len(m.Runs) > maxRuns {
		m.Runs = m.Runs[len(m.Runs)-maxRuns:]
	}
}

// Save persists the manifest atomically, creating parent directories as
// needed.
func (m *Manifest) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir manifest dir: %w", err)
		}
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}

// Record is the load-append-save convenience used after a table write.
func Record(path string, e Entry) error {
	m, err := Load(path)
	if err != nil {
		return err
	}
	m.Append(e)
	return m.Save(path)
}
