package schedules

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

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSchedules),
	}
}

func (r *ScheduleMongoRepository) Insert(ctx context.Context, schedule *models.Schedule) (string, error) {
	result, err := r.Collection.InsertOne(ctx, schedule.ConvertToBsonM())
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ScheduleMongoRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var document scheduleDocument
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return document.toModel(), nil
}

func (r *ScheduleMongoRepository) FindByInstructorAndDay(ctx context.Context, instructorID, day string) ([]*models.Schedule, error) {
	filter := bson.M{
		"instructorId": instructorID,
		"day":          day,
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	return decodeSchedules(ctx, cursor)
}

func (r *ScheduleMongoRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	objectID, err := primitive.ObjectIDFromHex(schedule.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": schedule.ConvertToBsonM()}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ScheduleMongoRepository) DeleteByID(ctx context.Context, scheduleID string) error {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrScheduleNotExist(nil)
	}
	return nil
}

func (r *ScheduleMongoRepository) List(ctx context.Context, listFilter *contracts.ScheduleListFilter) ([]*models.Schedule, error) {
	filter := bson.M{}
	if listFilter.InstructorID != "" {
		filter["instructorId"] = listFilter.InstructorID
	}
	if listFilter.Room != "" {
		filter["room"] = listFilter.Room
	}
	if listFilter.Day != "" {
		filter["day"] = listFilter.Day
	}

	// Sorted by _id so pagination is stable in insertion order.
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(listFilter.Skip)).
		SetLimit(int64(listFilter.Limit))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	return decodeSchedules(ctx, cursor)
}

// scheduleDocument mirrors models.Schedule with the ObjectID left in its
// native type so cursor decoding does not lose the identity.
type scheduleDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	SubjectCode  string             `bson:"subjectCode"`
	InstructorID string             `bson:"instructorId"`
	Section      string             `bson:"section"`
	Day          string             `bson:"day"`
	StartTime    string             `bson:"startTime"`
	EndTime      string             `bson:"endTime"`
	Room         string             `bson:"room"`
}

func (d *scheduleDocument) toModel() *models.Schedule {
	return &models.Schedule{
		ID:           d.ID.Hex(),
		SubjectCode:  d.SubjectCode,
		InstructorID: d.InstructorID,
		Section:      d.Section,
		Day:          d.Day,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Room:         d.Room,
	}
}

func decodeSchedules(ctx context.Context, cursor *mongo.Cursor) ([]*models.Schedule, error) {
	schedules := make([]*models.Schedule, 0)
	for cursor.Next(ctx) {
		var document scheduleDocument
		if err := cursor.Decode(&document); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		schedules = append(schedules, document.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, nil
}
