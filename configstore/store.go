// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package configstore

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/drawlab/server/experiment"
	"github.com/drawlab/server/models"
)

// Store persists generated config documents as JSON files under a root
// directory, laid out as
// {root}/{experiment}_{stimuliSet}/{condition}/batch_{b}_shuffle_{s}.json.
// Files are written once at generation time and read-only afterwards.
type Store struct {
	root string
}

// Entry is one persisted config and its store-relative path.
type Entry struct {
	Path string
	Doc  models.ConfigDocument
}

func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Write persists one generated config, creating directories as needed.
func (s *Store) Write(cfg experiment.GeneratedConfig) error {
	full := filepath.Join(s.root, cfg.Path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir for %q: %w", cfg.Path, err)
	}
	data, err := json.Marshal(cfg.Doc)
	if err != nil {
		return fmt.Errorf("failed to encode config %q: %w", cfg.Path, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %q: %w", cfg.Path, err)
	}
	return nil
}

// Read loads a config by its store-relative path.
func (s *Store) Read(rel string) (*models.ConfigDocument, error) {
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", rel, err)
	}
	var doc models.ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", rel, err)
	}
	return &doc, nil
}

// List walks the store and loads every persisted config, sorted by path.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		doc, err := s.Read(rel)
		if err != nil {
			return err
		}
		entries = append(entries, Entry{Path: rel, Doc: *doc})
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list configs under %q: %w", s.root, err)
	}
	return entries, nil
}

// Summaries returns the metadata of every persisted config.
func (s *Store) Summaries() ([]models.ConfigSummary, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.ConfigSummary, len(entries))
	for i, e := range entries {
		summaries[i] = models.ConfigSummary{Path: e.Path, Metadata: e.Doc.Metadata}
	}
	return summaries, nil
}
