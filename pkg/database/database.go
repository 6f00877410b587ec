package database

import (
	"context"
	"fmt"
	"time"

	"appraisalhub-properties/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var DB *mongo.Database

// InitDB connects to MongoDB and prepares the property-data collection.
func InitDB(uri, dbName string) error {
	if uri == "" || dbName == "" {
		return fmt.Errorf("database URI and name are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(dbName)

	if err := createPropertyDataIndexes(ctx, DB); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
	}

	logger.GlobalLogger.Println("MongoDB connected successfully")
	return nil
}

// createPropertyDataIndexes keeps lookups by property ID and location fast.
func createPropertyDataIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection("property_data")
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "propertyId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "data.propertyDetails.suburb", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "data.propertyDetails.city", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "updatedAt", Value: 1}},
		},
	})
	return err
}

func CloseDB() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.GlobalLogger.Errorf("Error closing MongoDB: %v", err)
		} else {
			logger.GlobalLogger.Println("MongoDB connection closed")
		}
	}
}
