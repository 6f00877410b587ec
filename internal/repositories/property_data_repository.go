package repositories

import (
	"context"
	"time"

	"appraisalhub-properties/internal/models"
	"appraisalhub-properties/internal/utils"
	"appraisalhub-properties/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const propertyDataCollection = "property_data"

type propertyDataRepository struct {
	collection *mongo.Collection
}

func NewPropertyDataRepository() PropertyDataRepository {
	return &propertyDataRepository{
		collection: database.DB.Collection(propertyDataCollection),
	}
}

func (r *propertyDataRepository) FindByPropertyID(ctx context.Context, propertyID string) (*models.PropertyDataRecord, error) {
	start := time.Now()
	var record models.PropertyDataRecord
	err := r.collection.FindOne(ctx, bson.M{"propertyId": propertyID}).Decode(&record)
	utils.RecordMongoOperationDuration("find_one", propertyDataCollection, start)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		utils.RecordMongoError("find_one", propertyDataCollection)
		return nil, err
	}
	return &record, nil
}

func (r *propertyDataRepository) Upsert(ctx context.Context, record *models.PropertyDataRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.UpdatedAt = time.Now().UTC()

	filter := bson.M{"propertyId": record.PropertyID}
	update := bson.M{
		"$set": bson.M{
			"propertyId": record.PropertyID,
			"data":       record.Data,
			"updatedAt":  record.UpdatedAt,
		},
		"$setOnInsert": bson.M{"_id": record.ID},
	}

	start := time.Now()
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	utils.RecordMongoOperationDuration("upsert", propertyDataCollection, start)
	if err != nil {
		utils.RecordMongoError("upsert", propertyDataCollection)
		return err
	}
	return nil
}

func (r *propertyDataRepository) FindWithPagination(ctx context.Context, offset, limit int) ([]models.PropertyDataRecord, int64, error) {
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	utils.RecordMongoOperationDuration("count_documents", propertyDataCollection, start)
	if err != nil {
		utils.RecordMongoError("count_documents", propertyDataCollection)
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	utils.RecordMongoOperationDuration("find", propertyDataCollection, start)
	if err != nil {
		utils.RecordMongoError("find", propertyDataCollection)
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var records []models.PropertyDataRecord
	start = time.Now()
	err = cursor.All(ctx, &records)
	utils.RecordMongoOperationDuration("cursor_all", propertyDataCollection, start)
	if err != nil {
		utils.RecordMongoError("cursor_all", propertyDataCollection)
		return nil, 0, err
	}
	return records, total, nil
}

func (r *propertyDataRepository) Delete(ctx context.Context, propertyID string) error {
	start := time.Now()
	_, err := r.collection.DeleteOne(ctx, bson.M{"propertyId": propertyID})
	utils.RecordMongoOperationDuration("delete", propertyDataCollection, start)
	if err != nil {
		utils.RecordMongoError("delete", propertyDataCollection)
		return err
	}
	return nil
}
