package catalogRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"dojovcp/models"
)

// MemoryCatalogRepo is an in-memory CatalogRepository.
type MemoryCatalogRepo struct {
	mu        sync.RWMutex
	resources map[string]*models.Resource
	events    map[string]*models.Event
}

// NewMemoryCatalogRepo constructs an empty in-memory catalog.
func NewMemoryCatalogRepo() *MemoryCatalogRepo {
	return &MemoryCatalogRepo{
		resources: make(map[string]*models.Resource),
		events:    make(map[string]*models.Event),
	}
}

func (repo *MemoryCatalogRepo) CreateResource(_ context.Context, res *models.Resource) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	cp := *res
	repo.resources[res.ID] = &cp
	return nil
}

func (repo *MemoryCatalogRepo) UpdateResource(_ context.Context, res *models.Resource) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.resources[res.ID]; !ok {
		return ErrNotFound
	}
	cp := *res
	repo.resources[res.ID] = &cp
	return nil
}

func (repo *MemoryCatalogRepo) GetResource(_ context.Context, id string) (*models.Resource, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	res, ok := repo.resources[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *res
	return &cp, nil
}

func (repo *MemoryCatalogRepo) ListResources(_ context.Context, onlyActive bool) ([]models.Resource, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var out []models.Resource
	for _, res := range repo.resources {
		if onlyActive && !res.Active {
			continue
		}
		out = append(out, *res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (repo *MemoryCatalogRepo) CreateEvent(_ context.Context, ev *models.Event) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	cp := *ev
	repo.events[ev.ID] = &cp
	return nil
}

func (repo *MemoryCatalogRepo) GetEvent(_ context.Context, id string) (*models.Event, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	ev, ok := repo.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *ev
	return &cp, nil
}

func (repo *MemoryCatalogRepo) ListEvents(_ context.Context, from time.Time) ([]models.Event, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	var out []models.Event
	for _, ev := range repo.events {
		if !ev.Active || ev.Date.Before(from) {
			continue
		}
		out = append(out, *ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
