// Package transcript keeps a short per-user journal of the conversation:
// user intents going in and engine outcomes going out.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

// MaxMessages bounds the history kept per user; older entries roll off.
const MaxMessages = 10

// Message is one journal line.
type Message struct {
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	From      string `json:"from"`
	Content   string `json:"content"`
}

type userHistory struct {
	UserID   string    `json:"userId"`
	Messages []Message `json:"messages"`
}

// Store persists the journal as a whole-file JSON snapshot, same scheme
// as the wallet catalog.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]userHistory
}

// NewStore loads the journal from path; a missing file starts empty.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]userHistory),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	return s, nil
}

// Append records a message, trimming the user's history to MaxMessages.
func (s *Store) Append(userID, from, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.data[userID]
	h.UserID = userID
	h.Messages = append(h.Messages, Message{
		Timestamp: time.Now().UnixMilli(),
		From:      from,
		Content:   content,
	})
	if len(h.Messages) > MaxMessages {
		h.Messages = h.Messages[len(h.Messages)-MaxMessages:]
	}
	s.data[userID] = h

	return s.persistLocked()
}

// History returns up to limit of the user's most recent messages.
func (s *Store) History(userID string, limit int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.data[userID].Messages
	if limit <= 0 || limit > len(msgs) {
		limit = len(msgs)
	}
	out := make([]Message, limit)
	copy(out, msgs[len(msgs)-limit:])
	return out
}

// Clear drops the user's history.
func (s *Store) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace transcript: %w", err)
	}
	return nil
}
