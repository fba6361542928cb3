package utils

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidUserID accepts the id formats issued by the auth service: Mongo
// ObjectIDs (24 hex chars) and UUIDs.
func ValidUserID(id string) bool {
	if primitive.IsValidObjectID(id) {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}
