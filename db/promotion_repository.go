package db

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// PromotionRepository holds the promotion set. Promotions change rarely, so
// the set is loaded from its JSON file and served from memory behind a
// read/write lock.
type PromotionRepository struct {
	path string

	mu         sync.RWMutex
	promotions []entities.Promotion
}

func NewPromotionRepository(path string) (*PromotionRepository, error) {
	if path == "" {
		panic("path is empty")
	}

	r := &PromotionRepository{path: path}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-reads the promotion file. A missing file means no promotions.
func (r *PromotionRepository) Reload() error {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		r.mu.Lock()
		r.promotions = nil
		r.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read promotions file: %w", err)
	}

	var promotions []entities.Promotion
	if err := json.Unmarshal(raw, &promotions); err != nil {
		return fmt.Errorf("could not parse promotions file: %w", err)
	}

	r.mu.Lock()
	r.promotions = promotions
	r.mu.Unlock()
	return nil
}

// Active returns the promotions whose validity window covers the given
// instant.
func (r *PromotionRepository) Active(at time.Time) []entities.Promotion {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []entities.Promotion
	for _, p := range r.promotions {
		if p.ValidAt(at) {
			active = append(active, p)
		}
	}
	return active
}
