package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	PhoneNo   string             `json:"phoneNo" bson:"phoneNo"`
	Password  string             `json:"password,omitempty" bson:"password,omitempty"`
	Role      string             `json:"role" bson:"role"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
