package members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"membership-form-backend/src/models"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := NewMongoStore(mt.Coll)

		member := &models.Member{FullName: strPtr("A. Lee"), Interests: []string{}, Languages: []string{}}
		require.NoError(mt, store.Insert(context.Background(), member))
		assert.False(mt, member.ID.IsZero())
		assert.False(mt, member.CreatedAt.IsZero())
	})

	mt.Run("insert error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		store := NewMongoStore(mt.Coll)

		err := store.Insert(context.Background(), &models.Member{})
		assert.Error(mt, err)
	})

	mt.Run("find all", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "fullName", Value: "A. Lee"},
				{Key: "interests", Value: bson.A{"AI", "Robotics"}},
				{Key: "languages", Value: bson.A{}},
			},
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "fullName", Value: "B. Kim"},
			},
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)
		store := NewMongoStore(mt.Coll)

		members, err := store.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, members, 2)
		assert.Equal(mt, "A. Lee", *members[0].FullName)
		assert.Equal(mt, []string{"AI", "Robotics"}, members[0].Interests)
		assert.Nil(mt, members[0].CVPortfolioURL)
		assert.Equal(mt, "B. Kim", *members[1].FullName)
		assert.Equal(mt, []string{}, members[1].Interests)
		assert.Equal(mt, []string{}, members[1].Languages)
	})

	mt.Run("find error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
		}))
		store := NewMongoStore(mt.Coll)

		_, err := store.FindAll(context.Background())
		assert.Error(mt, err)
	})
}
