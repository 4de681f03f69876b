package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Slot is a single bookable unit on a vet's calendar. At most one slot exists
// per (date, time) per vet; the allocator is the only booking-path writer of
// IsAvailable.
type Slot struct {
	Time        string `json:"time" bson:"time"`
	IsAvailable bool   `json:"isAvailable" bson:"isAvailable"`
}

type DayAvailability struct {
	Date  string `json:"date" bson:"date"`
	Slots []Slot `json:"slots" bson:"slots"`
}

type Vet struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	Name           string             `json:"name" bson:"name"`
	Email          string             `json:"email" bson:"email"`
	PhoneNo        string             `json:"phoneNo" bson:"phoneNo"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Availability   []DayAvailability  `json:"availability" bson:"availability"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}
