package document

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-portal/internal/shared/apperror"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore membungkus database Mongo yang koneksinya sudah terbentuk
// di startup. db nil menghasilkan store yang selalu ErrUnavailable.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) (ID, error) {
	if s.db == nil {
		return ID{}, ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return ID{}, storageError(err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return ID{}, apperror.New(
			apperror.CodeStorageError,
			"Unexpected inserted id type",
			http.StatusInternalServerError,
		)
	}

	return FromObjectID(oid), nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter Filter, limit int64, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	cur, err := s.db.Collection(collection).Find(ctx, toBSON(filter), options.Find().SetLimit(limit))
	if err != nil {
		return storageError(err)
	}
	defer cur.Close(ctx)

	if err := cur.All(ctx, out); err != nil {
		return storageError(err)
	}
	return nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter Filter, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}

	err := s.db.Collection(collection).FindOne(ctx, toBSON(filter)).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocuments
	}
	if err != nil {
		return storageError(err)
	}
	return nil
}

func (s *mongoStore) UpdateOne(ctx context.Context, collection string, filter Filter, set Filter) (int64, error) {
	if s.db == nil {
		return 0, ErrUnavailable
	}

	res, err := s.db.Collection(collection).UpdateOne(
		ctx,
		toBSON(filter),
		bson.M{"$set": toBSON(set)},
	)
	if err != nil {
		return 0, storageError(err)
	}
	return res.MatchedCount, nil
}

func (s *mongoStore) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, storageError(err)
	}
	return names, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrUnavailable
	}
	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return storageError(err)
	}
	return nil
}

func (s *mongoStore) Name() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

func toBSON(f Filter) bson.M {
	m := bson.M{}
	for k, v := range f {
		m[k] = v
	}
	return m
}

func storageError(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeStorageError,
		"Storage operation failed",
		http.StatusInternalServerError,
	)
}
