package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Health status values for a rescued animal.
const (
	HealthHealthy    = "Healthy"
	HealthInjured    = "Injured"
	HealthRecovering = "Recovering"
)

// Adoption status values. The transition to StatusAdopted triggers promotion
// into the canonical pet profile.
const (
	StatusAvailable      = "Available"
	StatusPending        = "Pending"
	StatusAdopted        = "Adopted"
	StatusUnavailable    = "Unavailable"
	StatusNotForAdoption = "Not for Adoption"
)

const (
	ReadinessReady    = "Ready"
	ReadinessNotReady = "Not Ready"
)

type MedicalEntry struct {
	Note       string    `json:"note" bson:"note"`
	Cost       float64   `json:"cost" bson:"cost"`
	RecordedBy string    `json:"recordedBy" bson:"recordedBy"`
	RecordedAt time.Time `json:"recordedAt" bson:"recordedAt"`
}

type VaccinationEntry struct {
	Vaccine    string    `json:"vaccine" bson:"vaccine"`
	RecordedBy string    `json:"recordedBy" bson:"recordedBy"`
	RecordedAt time.Time `json:"recordedAt" bson:"recordedAt"`
}

// RescuedAnimal is the internal record of an animal taken in, prior to
// becoming a publicly listed adoptable pet. Code is a short random business
// identifier, unique across the collection.
type RescuedAnimal struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code              string             `json:"code" bson:"code"`
	Name              string             `json:"name" bson:"name"`
	Species           string             `json:"species" bson:"species"`
	Breed             string             `json:"breed" bson:"breed"`
	Description       string             `json:"description" bson:"description"`
	RescueDate        string             `json:"rescueDate" bson:"rescueDate"`
	Age               int                `json:"age" bson:"age"`
	Sex               string             `json:"sex" bson:"sex"`
	Image             string             `json:"image" bson:"image"`
	HealthStatus      string             `json:"healthStatus" bson:"healthStatus"`
	AdoptionStatus    string             `json:"adoptionStatus" bson:"adoptionStatus"`
	AdoptionReadiness string             `json:"adoptionReadiness" bson:"adoptionReadiness"`
	IsConfirmed       bool               `json:"isConfirmed" bson:"isConfirmed"`
	ConfirmedBy       string             `json:"confirmedBy" bson:"confirmedBy"`
	IsArchived        bool               `json:"isArchived" bson:"isArchived"`
	ArchiveReason     string             `json:"archiveReason" bson:"archiveReason"`
	MedicalRecords    []MedicalEntry     `json:"medicalRecords" bson:"medicalRecords"`
	Vaccinations      []VaccinationEntry `json:"vaccinations" bson:"vaccinations"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy         string             `json:"createdBy" bson:"createdBy"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy         string             `json:"updatedBy" bson:"updatedBy"`
}
