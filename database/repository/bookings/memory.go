package bookingsRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"dojovcp/models"
)

// MemoryReservationRepo is an in-memory ReservationRepository. It serializes
// the conflict-sensitive operations behind a mutex, which gives the same
// at-most-one-winner guarantee the Mongo transactions provide.
type MemoryReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*models.Reservation
}

// NewMemoryReservationRepo constructs an empty in-memory repository.
func NewMemoryReservationRepo() *MemoryReservationRepo {
	return &MemoryReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (repo *MemoryReservationRepo) QueryWindow(_ context.Context, resourceID string, windowStart, windowEnd time.Time) ([]models.Reservation, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.queryWindowLocked(resourceID, windowStart, windowEnd), nil
}

func (repo *MemoryReservationRepo) queryWindowLocked(resourceID string, windowStart, windowEnd time.Time) []models.Reservation {
	var out []models.Reservation
	for _, r := range repo.reservations {
		if r.ResourceID != resourceID {
			continue
		}
		if !r.End.After(windowStart) || !r.Start.Before(windowEnd) {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func (repo *MemoryReservationRepo) CreateIfFree(_ context.Context, res *models.Reservation, buffer time.Duration) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	window := res.Range()
	candidates := repo.queryWindowLocked(res.ResourceID, window.Start.Add(-buffer), window.End.Add(buffer))
	for _, cand := range candidates {
		if !cand.Status.IsActive() {
			continue
		}
		if models.Overlaps(window, cand.Range(), buffer) {
			return ErrOverlap
		}
	}
	cp := *res
	repo.reservations[res.ID] = &cp
	return nil
}

func (repo *MemoryReservationRepo) CreateForEvent(_ context.Context, res *models.Reservation, capacity int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.countActiveForEventLocked(res.EventID) >= capacity {
		return ErrEventFull
	}
	cp := *res
	repo.reservations[res.ID] = &cp
	return nil
}

func (repo *MemoryReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	r, ok := repo.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (repo *MemoryReservationRepo) GetByCode(_ context.Context, code string) (*models.Reservation, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, r := range repo.reservations {
		if r.Code == code {
			cp := *r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *MemoryReservationRepo) ListByUser(_ context.Context, userID string) ([]models.Reservation, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	var out []models.Reservation
	for _, r := range repo.reservations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	return out, nil
}

func (repo *MemoryReservationRepo) ListForResourceDay(ctx context.Context, resourceID string, day time.Time) ([]models.Reservation, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return repo.QueryWindow(ctx, resourceID, dayStart, dayStart.AddDate(0, 0, 1))
}

func (repo *MemoryReservationRepo) CountActiveForEvent(_ context.Context, eventID string) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.countActiveForEventLocked(eventID), nil
}

func (repo *MemoryReservationRepo) countActiveForEventLocked(eventID string) int {
	count := 0
	for _, r := range repo.reservations {
		if r.EventID == eventID && r.Status.IsActive() {
			count++
		}
	}
	return count
}

func (repo *MemoryReservationRepo) UpdateStatus(_ context.Context, id string, allowedFrom []models.ReservationStatus, to models.ReservationStatus, extra map[string]interface{}) (*models.Reservation, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	r, ok := repo.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	allowed := false
	for _, from := range allowedFrom {
		if r.Status == from {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrBadTransition
	}
	r.Status = to
	r.UpdatedAt = time.Now()
	if ref, ok := extra["payment_ref"].(string); ok {
		r.PaymentRef = ref
	}
	cp := *r
	return &cp, nil
}
