package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyData is the payload of a successful response.
type PropertyData struct {
	PropertyDetails      PropertyDetails      `json:"propertyDetails" bson:"propertyDetails"`
	ComparableProperties []ComparableProperty `json:"comparableProperties" bson:"comparableProperties"`
	MarketTrends         MarketTrends         `json:"marketTrends" bson:"marketTrends"`
}

// PropertyDataResponse is the outer envelope. Exactly one of Data or Error is
// set: a success always carries a fully populated Data, a failure always
// carries a non-empty Error.
type PropertyDataResponse struct {
	Success bool          `json:"success" bson:"success"`
	Data    *PropertyData `json:"data,omitempty" bson:"data,omitempty"`
	Error   string        `json:"error,omitempty" bson:"error,omitempty"`
}

// PropertyDataRecord is the persisted form of an assembled payload.
type PropertyDataRecord struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	PropertyID string             `json:"propertyId" bson:"propertyId"`
	Data       PropertyData       `json:"data" bson:"data"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PaginatedPropertyDataResponse struct {
	Data []PropertyDataRecord `json:"data"`
	Meta PaginationMeta       `json:"meta"`
}

// BatchDataRequest is the body of the batch endpoint.
type BatchDataRequest struct {
	PropertyIDs []string `json:"propertyIds" binding:"required"`
}
