// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package configstore

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/drawlab/server/models"
)

var (
	// ErrConfigNotFound reports an exact experiment/condition lookup that
	// matched no persisted config.
	ErrConfigNotFound = errors.New("config not found")

	// ErrNoMatchingConfig reports a filtered search with an empty result.
	ErrNoMatchingConfig = errors.New("no matching config")
)

// firstConfigName is the config served for exact experiment/condition
// lookups: the first generated batch of the first shuffle.
const firstConfigName = "batch_0_shuffle_0.json"

// Resolver selects a persisted config for an incoming session. With both an
// experiment id and a condition it resolves the first generated batch
// exactly; otherwise it picks uniformly at random among the configs matching
// whichever key is present.
type Resolver struct {
	store *Store

	mu  sync.Mutex
	rng *rand.Rand
}

func NewResolver(store *Store) *Resolver {
	return &Resolver{
		store: store,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Resolve picks a config for the given (possibly empty) experiment id and
// condition.
func (r *Resolver) Resolve(experimentID, condition string) (*models.ConfigDocument, error) {
	if experimentID != "" && condition != "" {
		return r.resolveExact(experimentID, condition)
	}
	return r.resolveRandom(experimentID, condition)
}

// resolveExact looks for {experimentID}_{stimuliSet}/{condition}/batch_0_shuffle_0.json.
// The stimuli-set suffix of the directory name is not known at serve time,
// so any directory named after the experiment qualifies.
func (r *Resolver) resolveExact(experimentID, condition string) (*models.ConfigDocument, error) {
	dirs, err := os.ReadDir(r.store.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: experiment %q condition %q", ErrConfigNotFound, experimentID, condition)
		}
		return nil, fmt.Errorf("failed to scan config store: %w", err)
	}
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		if d.Name() != experimentID && !strings.HasPrefix(d.Name(), experimentID+"_") {
			continue
		}
		rel := filepath.Join(d.Name(), condition, firstConfigName)
		doc, err := r.store.Read(rel)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: experiment %q condition %q", ErrConfigNotFound, experimentID, condition)
}

// resolveRandom filters all persisted configs by whichever of experiment id
// and condition is present and picks one uniformly at random.
func (r *Resolver) resolveRandom(experimentID, condition string) (*models.ConfigDocument, error) {
	entries, err := r.store.List()
	if err != nil {
		return nil, err
	}
	var matches []Entry
	for _, e := range entries {
		if experimentID != "" && e.Doc.Metadata.ExperimentID != experimentID {
			continue
		}
		if condition != "" && e.Doc.Metadata.Condition != condition {
			continue
		}
		matches = append(matches, e)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: experiment %q condition %q", ErrNoMatchingConfig, experimentID, condition)
	}

	r.mu.Lock()
	pick := r.rng.Intn(len(matches))
	r.mu.Unlock()

	doc := matches[pick].Doc
	return &doc, nil
}
