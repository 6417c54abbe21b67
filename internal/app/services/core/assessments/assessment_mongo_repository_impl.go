package assessments

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/app/models"
	"mna-assessment-service/internal/pkg/exceptions"
)

type AssessmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssessmentMongoRepository(db *mongo.Database, collectionName string) contracts.AssessmentRepository {
	return &AssessmentMongoRepository{
		Collection: db.Collection(collectionName),
	}
}

func (repo *AssessmentMongoRepository) Create(ctx context.Context, assessment *models.Assessment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, assessment)
	if err != nil {
		return "", wrapMongoError(err, exceptions.ErrMongoDBInsertDocument)
	}

	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = objectID
	}
	return assessment.ID.Hex(), nil
}

// FindAll returns the matching assessments newest first. No match yields an
// empty, non-nil slice.
func (repo *AssessmentMongoRepository) FindAll(ctx context.Context, filter *models.AssessmentFilter) ([]models.Assessment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, filter.ConvertToBSON(), findOptions)
	if err != nil {
		return nil, wrapMongoError(err, exceptions.ErrMongoDBFindDocument)
	}
	defer cursor.Close(ctx)

	assessments := make([]models.Assessment, 0)
	err = cursor.All(ctx, &assessments)
	if err != nil {
		return nil, wrapMongoError(err, exceptions.ErrMongoDBIterateDocuments)
	}
	return assessments, nil
}

func (repo *AssessmentMongoRepository) Ping(ctx context.Context) error {
	err := repo.Collection.Database().Client().Ping(ctx, readpref.Primary())
	if err != nil {
		return exceptions.ErrStoreUnavailable(err)
	}
	return nil
}

// wrapMongoError maps connectivity failures to ErrStoreUnavailable and
// everything else to fallback.
func wrapMongoError(err error, fallback func(error) *exceptions.CustomError) error {
	if isStoreUnavailable(err) {
		return exceptions.ErrStoreUnavailable(err)
	}
	return fallback(err)
}

func isStoreUnavailable(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return true
	}
	if errors.Is(err, mongo.ErrClientDisconnected) {
		return true
	}
	var selectionErr topology.ServerSelectionError
	return errors.As(err, &selectionErr)
}
