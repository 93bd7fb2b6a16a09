package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// JSONTicketStore keeps the ticket collection in a single JSON file. Saves
// go through a temp file and an atomic rename so a crash never leaves a
// half-written collection behind.
type JSONTicketStore struct {
	path string
	mu   sync.Mutex
}

func NewJSONTicketStore(path string) *JSONTicketStore {
	if path == "" {
		panic("path is empty")
	}
	return &JSONTicketStore{path: path}
}

func (s *JSONTicketStore) LoadAll(ctx context.Context) ([]entities.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read tickets file: %w", err)
	}

	var tickets []entities.Ticket
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, fmt.Errorf("could not parse tickets file: %w", err)
	}
	return tickets, nil
}

func (s *JSONTicketStore) SaveAll(ctx context.Context, tickets []entities.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.MarshalIndent(tickets, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal tickets: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("could not create tickets dir: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("could not write tickets file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("could not replace tickets file: %w", err)
	}
	return nil
}
