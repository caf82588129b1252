package bookingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dojovcp/database"
	"dojovcp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new instance of MongoReservationRepo.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("dojovcp")
	return &MongoReservationRepo{coll: db.Collection("reservations")}
}

func (repo *MongoReservationRepo) QueryWindow(ctx context.Context, resourceID string, windowStart, windowEnd time.Time) ([]models.Reservation, error) {
	// Interval intersection, not start containment: a reservation that began
	// before the window but runs into it must still be a candidate.
	filter := bson.M{
		"resource_id": resourceID,
		"end":         bson.M{"$gt": windowStart},
		"start":       bson.M{"$lt": windowEnd},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying reservation window: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	for cursor.Next(ctx) {
		var r models.Reservation
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding reservation: %w", err)
		}
		out = append(out, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}

// CreateIfFree runs the two-phase conflict check. The pre-fetch above only
// bounds the candidate set; the transaction re-reads every candidate fresh,
// because the store's transactions are only consistent for documents
// explicitly read within them.
func (repo *MongoReservationRepo) CreateIfFree(ctx context.Context, res *models.Reservation, buffer time.Duration) error {
	window := res.Range()
	candidates, err := repo.QueryWindow(ctx, res.ResourceID, window.Start.Add(-buffer), window.End.Add(buffer))
	if err != nil {
		return err
	}

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		for _, cand := range candidates {
			var fresh models.Reservation
			err := repo.coll.FindOne(sc, bson.M{"id": cand.ID}).Decode(&fresh)
			if err == mongo.ErrNoDocuments {
				continue
			}
			if err != nil {
				return fmt.Errorf("re-read of reservation %s failed: %w", cand.ID, err)
			}
			if !fresh.Status.IsActive() {
				continue
			}
			if models.Overlaps(window, fresh.Range(), buffer) {
				return ErrOverlap
			}
		}
		if _, err := repo.coll.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err != nil {
		if errors.Is(err, ErrOverlap) {
			return ErrOverlap
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
	return nil
}

// CreateForEvent books one seat of a capacity-based event. The count runs
// inside the transaction so concurrent bookings serialize against each other.
func (repo *MongoReservationRepo) CreateForEvent(ctx context.Context, res *models.Reservation, capacity int) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		taken, err := repo.countActiveForEvent(sc, res.EventID)
		if err != nil {
			return err
		}
		if taken >= capacity {
			return ErrEventFull
		}
		if _, err := repo.coll.InsertOne(sc, res); err != nil {
			return fmt.Errorf("insert event booking failed: %w", err)
		}
		return nil
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err != nil {
		if errors.Is(err, ErrEventFull) {
			return ErrEventFull
		}
		return fmt.Errorf("event booking transaction failed: %w", err)
	}
	return nil
}

func (repo *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	var r models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
	}
	return &r, nil
}

func (repo *MongoReservationRepo) GetByCode(ctx context.Context, code string) (*models.Reservation, error) {
	var r models.Reservation
	if err := repo.coll.FindOne(ctx, bson.M{"code": code}).Decode(&r); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching reservation by code: %w", err)
	}
	return &r, nil
}

func (repo *MongoReservationRepo) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: -1}})
	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	for cursor.Next(ctx) {
		var r models.Reservation
		if err := cursor.Decode(&r); err != nil {
			return nil, fmt.Errorf("error decoding reservation: %w", err)
		}
		out = append(out, r)
	}
	return out, cursor.Err()
}

func (repo *MongoReservationRepo) ListForResourceDay(ctx context.Context, resourceID string, day time.Time) ([]models.Reservation, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return repo.QueryWindow(ctx, resourceID, dayStart, dayEnd)
}

func (repo *MongoReservationRepo) CountActiveForEvent(ctx context.Context, eventID string) (int, error) {
	return repo.countActiveForEvent(ctx, eventID)
}

func (repo *MongoReservationRepo) countActiveForEvent(ctx context.Context, eventID string) (int, error) {
	filter := bson.M{
		"event_id": eventID,
		"status":   bson.M{"$in": models.ActiveStatuses},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting event bookings: %w", err)
	}
	return int(count), nil
}

func (repo *MongoReservationRepo) UpdateStatus(ctx context.Context, id string, allowedFrom []models.ReservationStatus, to models.ReservationStatus, extra map[string]interface{}) (*models.Reservation, error) {
	set := bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}
	for k, v := range extra {
		set[k] = v
	}
	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": allowedFrom},
	}
	res := repo.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Reservation
	if err := res.Decode(&updated); err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("error updating reservation %s: %w", id, err)
		}
		// No match: missing document or wrong source status.
		if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Err(); err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		} else if err != nil {
			return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
		}
		return nil, ErrBadTransition
	}
	return &updated, nil
}
