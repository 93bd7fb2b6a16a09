package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
)

// LoyaltyRepository is the registry of loyalty customers: a read-mostly set
// with its own JSON persistence.
type LoyaltyRepository struct {
	path string

	mu      sync.RWMutex
	members map[string]struct{}
}

func NewLoyaltyRepository(path string) (*LoyaltyRepository, error) {
	if path == "" {
		panic("path is empty")
	}

	r := &LoyaltyRepository{
		path:    path,
		members: map[string]struct{}{},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read loyalty file: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("could not parse loyalty file: %w", err)
	}
	for _, id := range ids {
		r.members[id] = struct{}{}
	}
	return r, nil
}

func (r *LoyaltyRepository) IsRegistered(_ context.Context, customerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.members[customerID]
	return ok
}

func (r *LoyaltyRepository) Register(ctx context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[customerID]; ok {
		return fmt.Errorf("customer %s is already registered", customerID)
	}
	r.members[customerID] = struct{}{}

	if err := r.persist(); err != nil {
		log.FromContext(ctx).WithError(err).Error("could not persist loyalty registry")
	}
	return nil
}

func (r *LoyaltyRepository) persist() error {
	ids := make([]string, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}

	raw, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal loyalty registry: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("could not write loyalty file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("could not replace loyalty file: %w", err)
	}
	return nil
}
