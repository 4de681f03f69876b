package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentPet struct {
	Name        string `json:"name" bson:"name"`
	Species     string `json:"species" bson:"species"`
	DateOfBirth string `json:"dateOfBirth" bson:"dateOfBirth"`
}

type AppointmentOwner struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	PhoneNo string `json:"phoneNo" bson:"phoneNo"`
}

// Appointment is keyed by Code (an opaque unique token) for update/delete and
// by the storage ObjectID for point reads.
type Appointment struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	Date           string             `json:"date" bson:"date"`
	Time           string             `json:"time" bson:"time"`
	VetId          string             `json:"vetId" bson:"vetId"`
	PetId          string             `json:"petId" bson:"petId"`
	Pet            AppointmentPet     `json:"pet" bson:"pet"`
	Owner          AppointmentOwner   `json:"owner" bson:"owner"`
	MedicalHistory string             `json:"medicalHistory" bson:"medicalHistory"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy      string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string             `json:"updatedBy" bson:"updatedBy"`
}
