package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

const (
	ProfileCollection = "user_profiles"
	CheckInCollection = "check_ins"
)

// EnsureMongoIndexes creates the unique owner index on profiles and the
// per-user recency index on check-ins. It is safe to call on every start.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(ProfileCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(CheckInCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "logged_at", Value: -1}},
	})
	return err
}

type mongoProfileRepository struct {
	coll *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) ProfileRepository {
	return &mongoProfileRepository{coll: db.Collection(ProfileCollection)}
}

func (r *mongoProfileRepository) FindByUser(ctx context.Context, userID string) (*db_models.WellnessProfile, error) {
	var profile db_models.WellnessProfile
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&profile)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *mongoProfileRepository) Create(ctx context.Context, profile *db_models.WellnessProfile) error {
	if profile.Version == 0 {
		profile.Version = 1
	}
	profile.Touch(true)

	_, err := r.coll.InsertOne(ctx, profile)
	if mongo.IsDuplicateKeyError(err) {
		return utils.ErrVersionConflict
	}
	return err
}

func (r *mongoProfileRepository) Save(ctx context.Context, profile *db_models.WellnessProfile) error {
	expected := profile.Version
	profile.Version = expected + 1
	profile.Touch(false)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"user": profile.UserID, "version": expected}, profile)
	if err != nil {
		profile.Version = expected
		return err
	}
	if res.MatchedCount == 0 {
		profile.Version = expected
		return utils.ErrVersionConflict
	}

	return nil
}

type mongoCheckInRepository struct {
	coll *mongo.Collection
}

func NewMongoCheckInRepository(db *mongo.Database) CheckInRepository {
	return &mongoCheckInRepository{coll: db.Collection(CheckInCollection)}
}

func (r *mongoCheckInRepository) Create(ctx context.Context, checkIn *db_models.CheckIn) error {
	checkIn.Touch(true)
	_, err := r.coll.InsertOne(ctx, checkIn)
	return err
}

func (r *mongoCheckInRepository) ListRecent(ctx context.Context, userID string, limit int) ([]db_models.CheckIn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "logged_at", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	checkIns := make([]db_models.CheckIn, 0, limit)
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *mongoCheckInRepository) Latest(ctx context.Context, userID string) (*db_models.CheckIn, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "logged_at", Value: -1}})

	var checkIn db_models.CheckIn
	err := r.coll.FindOne(ctx, bson.M{"user": userID}, opts).Decode(&checkIn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &checkIn, nil
}
