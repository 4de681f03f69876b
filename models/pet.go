package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdoptablePet is the canonical public-facing profile. PetId has the form
// <Prefix>-<NNN> where the prefix is derived from the species (D for Dog,
// C for Cat) and NNN is a per-prefix counter value.
type AdoptablePet struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PetId       string             `json:"petId" bson:"petId"`
	Name        string             `json:"name" bson:"name"`
	Species     string             `json:"species" bson:"species"`
	Breed       string             `json:"breed" bson:"breed"`
	Age         int                `json:"age" bson:"age"`
	Sex         string             `json:"sex" bson:"sex"`
	Status      string             `json:"status" bson:"status"`
	Description string             `json:"description" bson:"description"`
	Image       string             `json:"image" bson:"image"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy   string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string             `json:"updatedBy" bson:"updatedBy"`
}

// Counter backs the per-prefix identifier sequences. Seq is advanced with an
// atomic $inc, never read-modify-write.
type Counter struct {
	Prefix string `json:"prefix" bson:"_id"`
	Seq    int64  `json:"seq" bson:"seq"`
}
