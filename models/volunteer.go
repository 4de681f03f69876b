package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Volunteer struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code"`
	UserCode     string             `json:"userCode" bson:"userCode"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PhoneNo      string             `json:"phoneNo" bson:"phoneNo"`
	Availability string             `json:"availability" bson:"availability"`
	Motivation   string             `json:"motivation" bson:"motivation"`
	Status       string             `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy    string             `json:"updatedBy" bson:"updatedBy"`
}
