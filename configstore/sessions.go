// Copyright (c) 2025 The Drawlab Authors.
// MIT License; see LICENSE.

package configstore

import (
	"sync"

	"github.com/drawlab/server/models"
)

// SessionCache pins a resolved config to a participant session so every
// request of that session replays the same selection. Entries live for the
// process lifetime; sessions are short-lived relative to the server.
type SessionCache struct {
	mu   sync.Mutex
	byID map[string]models.ConfigDocument
}

func NewSessionCache() *SessionCache {
	return &SessionCache{byID: make(map[string]models.ConfigDocument)}
}

// Get returns the config pinned to a session, if any.
func (c *SessionCache) Get(sessionID string) (*models.ConfigDocument, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.byID[sessionID]
	if !ok {
		return nil, false
	}
	return &doc, true
}

// Put pins a config to a session. The first selection wins; later calls for
// the same session are ignored.
func (c *SessionCache) Put(sessionID string, doc models.ConfigDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[sessionID]; ok {
		return
	}
	c.byID[sessionID] = doc
}
