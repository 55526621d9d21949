package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// positionsFile records the last scroll position per document path so a
// reopened file resumes where the reader left off. Positions are clamped
// into the new bounds on restore, so stale values are harmless.
type positionsFile struct {
	Positions map[string]float64 `toml:"positions"`
}

// PositionStore persists per-file scroll positions
type PositionStore struct {
	filePath string
}

// NewPositionStore creates a position store next to the config file
func NewPositionStore() *PositionStore {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return &PositionStore{
		filePath: filepath.Join(configDir, "markview", "positions.toml"),
	}
}

// NewPositionStoreAtPath creates a position store at an explicit path
func NewPositionStoreAtPath(path string) *PositionStore {
	return &PositionStore{filePath: path}
}

// Load returns the saved position for a document path, if any
func (ps *PositionStore) Load(docPath string) (float64, bool) {
	data, err := os.ReadFile(ps.filePath)
	if err != nil {
		return 0, false
	}

	var pf positionsFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return 0, false
	}

	pos, ok := pf.Positions[docPath]
	if !ok || pos < 0 {
		return 0, false
	}
	return pos, true
}

// Save records the position for a document path
func (ps *PositionStore) Save(docPath string, position float64) error {
	pf := positionsFile{Positions: make(map[string]float64)}
	if data, err := os.ReadFile(ps.filePath); err == nil {
		// Best effort: a corrupt file is replaced wholesale
		_ = toml.Unmarshal(data, &pf)
		if pf.Positions == nil {
			pf.Positions = make(map[string]float64)
		}
	}

	if position < 0 {
		position = 0
	}
	pf.Positions[docPath] = position

	if err := os.MkdirAll(filepath.Dir(ps.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := toml.Marshal(pf)
	if err != nil {
		return fmt.Errorf("failed to marshal positions: %w", err)
	}

	if err := os.WriteFile(ps.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write positions file: %w", err)
	}
	return nil
}
