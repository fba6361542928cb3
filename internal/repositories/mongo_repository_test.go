package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"aura/internal/models/db_models"
	"aura/pkg/utils"
)

const (
	profilesNS = "aura." + ProfileCollection
	checkInsNS = "aura." + CheckInCollection
)

func newMockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestMongoProfileRepository_FindByUser(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, profilesNS, mtest.FirstBatch))

		p, err := NewMongoProfileRepository(mt.DB).FindByUser(context.Background(), "u1")
		require.NoError(mt, err)
		assert.Nil(mt, p)
	})

	mt.Run("found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, profilesNS, mtest.FirstBatch, bson.D{
			{Key: "user", Value: "u1"},
			{Key: "version", Value: int64(3)},
			{Key: "name", Value: "Linh"},
			{Key: "goals", Value: bson.A{"sleep better"}},
		}))

		p, err := NewMongoProfileRepository(mt.DB).FindByUser(context.Background(), "u1")
		require.NoError(mt, err)
		require.NotNil(mt, p)
		assert.Equal(mt, "Linh", p.Name)
		assert.EqualValues(mt, 3, p.Version)
		assert.Equal(mt, []string{"sleep better"}, []string(p.Goals))
	})
}

func TestMongoProfileRepository_Create(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("stamps the first version", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := &db_models.WellnessProfile{UserID: "u1"}
		require.NoError(mt, NewMongoProfileRepository(mt.DB).Create(context.Background(), p))
		assert.EqualValues(mt, 1, p.Version)
		assert.NotZero(mt, p.CreatedAt)
	})

	mt.Run("duplicate owner conflicts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: aura.user_profiles index: user_1",
		}))

		err := NewMongoProfileRepository(mt.DB).Create(context.Background(), &db_models.WellnessProfile{UserID: "u1"})
		assert.ErrorIs(mt, err, utils.ErrVersionConflict)
	})
}

func TestMongoProfileRepository_Save(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("matching version bumps it", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		p := &db_models.WellnessProfile{UserID: "u1", Version: 4}
		require.NoError(mt, NewMongoProfileRepository(mt.DB).Save(context.Background(), p))
		assert.EqualValues(mt, 5, p.Version)
	})

	mt.Run("stale version conflicts and is restored", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		p := &db_models.WellnessProfile{UserID: "u1", Version: 4}
		err := NewMongoProfileRepository(mt.DB).Save(context.Background(), p)
		assert.ErrorIs(mt, err, utils.ErrVersionConflict)
		assert.EqualValues(mt, 4, p.Version)
	})

	mt.Run("driver error restores the version", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad replacement",
		}))

		p := &db_models.WellnessProfile{UserID: "u1", Version: 4}
		err := NewMongoProfileRepository(mt.DB).Save(context.Background(), p)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, utils.ErrVersionConflict)
		assert.EqualValues(mt, 4, p.Version)
	})
}

func TestMongoCheckInRepository(t *testing.T) {
	mt := newMockMongo(t)
	newer := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	mt.Run("list recent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, checkInsNS, mtest.FirstBatch,
			bson.D{{Key: "user", Value: "u1"}, {Key: "mood", Value: 4}, {Key: "logged_at", Value: newer}},
			bson.D{{Key: "user", Value: "u1"}, {Key: "mood", Value: 2}, {Key: "logged_at", Value: newer.Add(-time.Hour)}},
		))

		list, err := NewMongoCheckInRepository(mt.DB).ListRecent(context.Background(), "u1", 30)
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		assert.Equal(mt, 4, list[0].Mood)
		assert.True(mt, newer.Equal(list[0].LoggedAt))
	})

	mt.Run("list empty is not nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, checkInsNS, mtest.FirstBatch))

		list, err := NewMongoCheckInRepository(mt.DB).ListRecent(context.Background(), "u1", 30)
		require.NoError(mt, err)
		assert.NotNil(mt, list)
		assert.Empty(mt, list)
	})

	mt.Run("latest missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, checkInsNS, mtest.FirstBatch))

		c, err := NewMongoCheckInRepository(mt.DB).Latest(context.Background(), "u1")
		require.NoError(mt, err)
		assert.Nil(mt, c)
	})
}
