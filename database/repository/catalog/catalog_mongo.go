package catalogRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dojovcp/database"
	"dojovcp/models"
	"dojovcp/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resourceCacheTTL = 10 * time.Minute

// MongoCatalogRepo implements CatalogRepository on MongoDB, with a redis
// read-through cache in front of resource lookups. Resources change rarely
// and every availability or quote request needs one.
type MongoCatalogRepo struct {
	resources *mongo.Collection
	events    *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("dojovcp")
	return &MongoCatalogRepo{
		resources: db.Collection("resources"),
		events:    db.Collection("events"),
	}
}

func resourceCacheKey(id string) string {
	return "resource:" + id
}

func (repo *MongoCatalogRepo) CreateResource(ctx context.Context, res *models.Resource) error {
	now := time.Now().Unix()
	res.CreatedAt = now
	res.UpdatedAt = now
	if _, err := repo.resources.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("error inserting resource: %w", err)
	}
	return nil
}

func (repo *MongoCatalogRepo) UpdateResource(ctx context.Context, res *models.Resource) error {
	res.UpdatedAt = time.Now().Unix()
	result, err := repo.resources.ReplaceOne(ctx, bson.M{"id": res.ID}, res)
	if err != nil {
		return fmt.Errorf("error updating resource %s: %w", res.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	utils.GetCacheClient().Del(ctx, resourceCacheKey(res.ID))
	return nil
}

func (repo *MongoCatalogRepo) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	cache := utils.GetCacheClient()
	if cached, err := cache.Get(ctx, resourceCacheKey(id)).Result(); err == nil {
		var res models.Resource
		if err := json.Unmarshal([]byte(cached), &res); err == nil {
			return &res, nil
		}
	}

	var res models.Resource
	if err := repo.resources.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching resource %s: %w", id, err)
	}

	if data, err := json.Marshal(res); err == nil {
		cache.Set(ctx, resourceCacheKey(id), data, resourceCacheTTL)
	}
	return &res, nil
}

func (repo *MongoCatalogRepo) ListResources(ctx context.Context, onlyActive bool) ([]models.Resource, error) {
	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.resources.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Resource
	for cursor.Next(ctx) {
		var res models.Resource
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("error decoding resource: %w", err)
		}
		out = append(out, res)
	}
	return out, cursor.Err()
}

func (repo *MongoCatalogRepo) CreateEvent(ctx context.Context, ev *models.Event) error {
	if _, err := repo.events.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("error inserting event: %w", err)
	}
	return nil
}

func (repo *MongoCatalogRepo) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var ev models.Event
	if err := repo.events.FindOne(ctx, bson.M{"id": id}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching event %s: %w", id, err)
	}
	return &ev, nil
}

func (repo *MongoCatalogRepo) ListEvents(ctx context.Context, from time.Time) ([]models.Event, error) {
	filter := bson.M{
		"active": true,
		"date":   bson.M{"$gte": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := repo.events.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Event
	for cursor.Next(ctx) {
		var ev models.Event
		if err := cursor.Decode(&ev); err != nil {
			return nil, fmt.Errorf("error decoding event: %w", err)
		}
		out = append(out, ev)
	}
	return out, cursor.Err()
}
