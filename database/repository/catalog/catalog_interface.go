// Package catalogRepo stores the bookable catalog: stations and events.
package catalogRepo

import (
	"context"
	"errors"
	"time"

	"dojovcp/models"
)

// ErrNotFound is returned when a resource or event does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// CatalogRepository provides access to stations and capacity-based events.
type CatalogRepository interface {
	CreateResource(ctx context.Context, res *models.Resource) error
	UpdateResource(ctx context.Context, res *models.Resource) error
	GetResource(ctx context.Context, id string) (*models.Resource, error)
	ListResources(ctx context.Context, onlyActive bool) ([]models.Resource, error)

	CreateEvent(ctx context.Context, ev *models.Event) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, from time.Time) ([]models.Event, error)
}
