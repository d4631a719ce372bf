package members

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"membership-form-backend/src/models"
)

// Store ที่เก็บ Member Record
type Store interface {
	Insert(ctx context.Context, member *models.Member) error
	FindAll(ctx context.Context) ([]models.Member, error)
}

type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// Insert assigns the id and creation time, then writes the document once.
func (s *MongoStore) Insert(ctx context.Context, member *models.Member) error {
	member.ID = primitive.NewObjectID()
	member.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := s.coll.InsertOne(ctx, member)
	if err != nil {
		return err
	}

	// sync inserted id (เผื่อไดรเวอร์คืนค่า id ใหม่)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}

	log.Infof("[member] inserted id=%s db=%s coll=%s",
		member.ID.Hex(), s.coll.Database().Name(), s.coll.Name())
	return nil
}

// FindAll returns every member in storage-native order.
func (s *MongoStore) FindAll(ctx context.Context) ([]models.Member, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	members := []models.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	for i := range members {
		normalize(&members[i])
	}
	return members, nil
}

// normalize documents written without the list fields.
func normalize(m *models.Member) {
	if m.Interests == nil {
		m.Interests = []string{}
	}
	if m.Languages == nil {
		m.Languages = []string{}
	}
}
