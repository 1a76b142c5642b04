package subjects

import (
	"context"
	"registrar-service/internal/app/contracts"
	"registrar-service/internal/app/models"
	"registrar-service/internal/pkg/constvars"
	"registrar-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubjectMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubjectMongoRepository(db *mongo.Client, dbName string) contracts.SubjectRepository {
	return &SubjectMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubjects),
	}
}

func (r *SubjectMongoRepository) Insert(ctx context.Context, subject *models.Subject) (string, error) {
	result, err := r.Collection.InsertOne(ctx, subject.ConvertToBsonM())
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SubjectMongoRepository) FindByCode(ctx context.Context, subjectCode string) (*models.Subject, error) {
	var document subjectDocument
	err := r.Collection.FindOne(ctx, bson.M{"subjectCode": subjectCode}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return document.toModel(), nil
}

func (r *SubjectMongoRepository) List(ctx context.Context, skip, limit int) ([]*models.Subject, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	subjects := make([]*models.Subject, 0)
	for cursor.Next(ctx) {
		var document subjectDocument
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		subjects = append(subjects, document.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return subjects, nil
}

func (r *SubjectMongoRepository) Update(ctx context.Context, subject *models.Subject) error {
	objectID, err := primitive.ObjectIDFromHex(subject.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": subject.ConvertToBsonM()},
		options.Update().SetUpsert(false),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SubjectMongoRepository) DeleteByID(ctx context.Context, subjectID string) error {
	objectID, err := primitive.ObjectIDFromHex(subjectID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrSubjectNotExist(nil)
	}
	return nil
}

type subjectDocument struct {
	ID                 primitive.ObjectID `bson:"_id"`
	SubjectCode        string             `bson:"subjectCode"`
	SubjectDescription string             `bson:"subjectDescription"`
	Units              int                `bson:"units"`
	Department         string             `bson:"department"`
}

func (d *subjectDocument) toModel() *models.Subject {
	return &models.Subject{
		ID:                 d.ID.Hex(),
		SubjectCode:        d.SubjectCode,
		SubjectDescription: d.SubjectDescription,
		Units:              d.Units,
		Department:         d.Department,
	}
}
