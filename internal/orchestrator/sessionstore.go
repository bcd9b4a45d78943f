/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package orchestrator

import (
	"sync"
	"time"

	authnmodel "github.com/asgardeo/storm/internal/authn/model"
)

// defaultSessionTTL bounds how long an unfinished login flow is kept alive.
const defaultSessionTTL = 10 * time.Minute

type sessionEntry struct {
	context   *authnmodel.AuthenticationContext
	expiresAt time.Time

	// mu serializes the turns of a single flow. Concurrent submissions for
	// the same session identifier are processed one at a time.
	mu sync.Mutex
}

// SessionDataStore holds the in-flight authentication contexts keyed by their
// session identifier.
type SessionDataStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
}

var (
	sessionStoreInstance *SessionDataStore
	sessionStoreOnce     sync.Once
)

// GetSessionDataStore returns the shared session data store.
func GetSessionDataStore() *SessionDataStore {
	sessionStoreOnce.Do(func() {
		sessionStoreInstance = NewSessionDataStore(defaultSessionTTL)
	})
	return sessionStoreInstance
}

// NewSessionDataStore creates a session data store whose entries expire after
// the given duration.
func NewSessionDataStore(ttl time.Duration) *SessionDataStore {
	return &SessionDataStore{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
	}
}

// Acquire returns the authentication context for the given session identifier,
// creating one if none exists, and locks the session for the caller. The
// returned release function must be called once the turn completes.
func (s *SessionDataStore) Acquire(sessionDataKey string) (
	*authnmodel.AuthenticationContext, func()) {
	s.mu.Lock()
	s.purgeExpiredLocked()
	entry, ok := s.sessions[sessionDataKey]
	if !ok {
		entry = &sessionEntry{
			context: authnmodel.NewAuthenticationContext(sessionDataKey),
		}
		s.sessions[sessionDataKey] = entry
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	s.mu.Unlock()

	entry.mu.Lock()
	return entry.context, entry.mu.Unlock
}

// Get returns the authentication context for the given session identifier, or
// nil when none exists.
func (s *SessionDataStore) Get(sessionDataKey string) *authnmodel.AuthenticationContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sessionDataKey]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil
	}
	return entry.context
}

// Remove discards the session with the given identifier.
func (s *SessionDataStore) Remove(sessionDataKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionDataKey)
}

// Size returns the number of live sessions.
func (s *SessionDataStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpiredLocked()
	return len(s.sessions)
}

func (s *SessionDataStore) purgeExpiredLocked() {
	now := time.Now()
	for key, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, key)
		}
	}
}
