package app

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"aes_cipher_service/internal/domain/ciphers"
	"aes_cipher_service/internal/pkg/logger"
)

// sessionEntry pairs a live cipher session with its registry bookkeeping. The
// entry mutex serializes Encrypt and Decrypt on the underlying session, which
// carries chaining state and is not safe for concurrent use.
type sessionEntry struct {
	mu              sync.Mutex
	session         ciphers.Session
	id              string
	dateTimeCreated time.Time
}

// info snapshots the entry. Callers must hold e.mu whenever the entry is
// reachable by other goroutines, since CurrentIV reads session state.
func (e *sessionEntry) info() *ciphers.SessionInfo {
	return &ciphers.SessionInfo{
		ID:              e.id,
		Mode:            e.session.Mode(),
		KeySize:         e.session.KeySize(),
		BlockSize:       e.session.BlockSize(),
		CurrentIV:       e.session.CurrentIV(),
		DateTimeCreated: e.dateTimeCreated,
	}
}

// cipherSessionService implements the CipherSessionService interface with an
// in-memory registry of sessions addressed by generated IDs.
type cipherSessionService struct {
	aesService ciphers.AESService
	logger     logger.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

// NewCipherSessionService creates a new cipherSessionService instance
func NewCipherSessionService(aesService ciphers.AESService, logger logger.Logger) (ciphers.CipherSessionService, error) {
	return &cipherSessionService{
		aesService: aesService,
		logger:     logger,
		sessions:   make(map[string]*sessionEntry),
	}, nil
}

// Create builds a session from the raw key, mode and IV and registers it
// under a fresh ID.
func (s *cipherSessionService) Create(key []byte, mode ciphers.Mode, iv []byte) (*ciphers.SessionInfo, error) {
	session, err := s.aesService.NewSession(key, mode, iv)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	entry := &sessionEntry{
		session:         session,
		id:              uuid.New().String(),
		dateTimeCreated: time.Now(),
	}
	sessionInfo := entry.info()

	s.mu.Lock()
	s.sessions[entry.id] = entry
	s.mu.Unlock()

	s.logger.Info("Created cipher session with id ", entry.id)
	return sessionInfo, nil
}

func (s *cipherSessionService) getEntry(sessionID string) (*sessionEntry, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cipher session with ID %s not found", sessionID)
	}
	return entry, nil
}

// List returns info about all registered sessions, oldest first.
func (s *cipherSessionService) List() ([]*ciphers.SessionInfo, error) {
	s.mu.RLock()
	entries := make([]*sessionEntry, 0, len(s.sessions))
	for _, entry := range s.sessions {
		entries = append(entries, entry)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dateTimeCreated.Equal(entries[j].dateTimeCreated) {
			return entries[i].id < entries[j].id
		}
		return entries[i].dateTimeCreated.Before(entries[j].dateTimeCreated)
	})

	sessionInfos := make([]*ciphers.SessionInfo, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		sessionInfos = append(sessionInfos, entry.info())
		entry.mu.Unlock()
	}
	return sessionInfos, nil
}

// GetByID returns info about the session with the given ID.
func (s *cipherSessionService) GetByID(sessionID string) (*ciphers.SessionInfo, error) {
	entry, err := s.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.info(), nil
}

// Encrypt enciphers plaintext under the session with the given ID, advancing
// its chain state.
func (s *cipherSessionService) Encrypt(sessionID string, plaintext []byte) ([]byte, error) {
	entry, err := s.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	ciphertext, err := entry.session.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return ciphertext, nil
}

// Decrypt deciphers ciphertext under the session with the given ID, advancing
// its chain state.
func (s *cipherSessionService) Decrypt(sessionID string, ciphertext []byte) ([]byte, error) {
	entry, err := s.getEntry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	plaintext, err := entry.session.Decrypt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return plaintext, nil
}

// DeleteByID unlinks the session with the given ID. Calls already holding the
// entry finish against the detached session.
func (s *cipherSessionService) DeleteByID(sessionID string) error {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("cipher session with ID %s not found", sessionID)
	}

	s.logger.Info("Deleted cipher session with id ", sessionID)
	return nil
}
