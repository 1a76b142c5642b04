package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) Insert(ctx context.Context, user *models.User) (string, error) {
	result, err := r.Collection.InsertOne(ctx, user.ConvertToBsonM())
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *UserMongoRepository) FindByCampusID(ctx context.Context, campusID string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"userId": campusID})
}

func (r *UserMongoRepository) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]*models.User, 0)
	for cursor.Next(ctx) {
		var document userDocument
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		users = append(users, document.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *UserMongoRepository) Update(ctx context.Context, user *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": user.ConvertToBsonM()},
		options.Update().SetUpsert(false),
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *UserMongoRepository) DeleteByID(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrUserNotExist(nil)
	}
	return nil
}

func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var document userDocument
	err := r.Collection.FindOne(ctx, filter).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return document.toModel(), nil
}

type userDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	UserID     string             `bson:"userId"`
	Firstname  string             `bson:"firstname"`
	Lastname   string             `bson:"lastname"`
	Middlename string             `bson:"middlename"`
	Password   string             `bson:"password"`
	Role       string             `bson:"role"`
	Department string             `bson:"department"`
	IsActive   bool               `bson:"isActive"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		Firstname:  d.Firstname,
		Lastname:   d.Lastname,
		Middlename: d.Middlename,
		Password:   d.Password,
		Role:       d.Role,
		Department: d.Department,
		IsActive:   d.IsActive,
	}
}
