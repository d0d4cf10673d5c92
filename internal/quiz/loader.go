package quiz

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadBankFile reads, parses and validates a single bank file.
func LoadBankFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quiz: reading bank %s: %w", path, err)
	}

	b, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("quiz: parsing bank %s: %w", path, err)
	}
	if b.ID == "" {
		b.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if b.Title == "" {
			b.Title = b.ID
		}
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("quiz: invalid bank %s: %w", path, err)
	}

	b.Source = path
	return b, nil
}

// LoadBank loads a bank from a file, or the first bank (by ID) of a directory.
func LoadBank(path string) (*Bank, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	if !info.IsDir() {
		return LoadBankFile(path)
	}

	banks, err := NewLoader(path).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(banks) == 0 {
		return nil, fmt.Errorf("quiz: no valid banks in %s", path)
	}
	return banks[0], nil
}

// Loader loads every bank under a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new bank loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads all bank files. Invalid files are skipped;
// use Check to see why. Results are sorted by ID.
func (l *Loader) LoadAll() ([]*Bank, error) {
	var banks []*Bank

	err := l.walk(func(path string) {
		if b, err := LoadBankFile(path); err == nil {
			banks = append(banks, b)
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(banks, func(i, j int) bool {
		return banks[i].ID < banks[j].ID
	})
	return banks, nil
}

// Check loads every bank file and returns the load error for each path,
// nil for valid files.
func (l *Loader) Check() (map[string]error, error) {
	results := make(map[string]error)
	err := l.walk(func(path string) {
		_, loadErr := LoadBankFile(path)
		results[path] = loadErr
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (l *Loader) walk(fn func(path string)) error {
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isBankFile(path) {
			return nil
		}
		fn(path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("quiz: walking directory %s: %w", l.Root, err)
	}
	return nil
}

func isBankFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
