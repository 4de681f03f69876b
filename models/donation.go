package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation payment is recorded state only; it is never verified against a
// payment processor. NextDonationDate is computed once at submission for
// recurring donations, there is no scheduler behind it.
type Donation struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code             string             `json:"code" bson:"code"`
	DonorCode        string             `json:"donorCode" bson:"donorCode"`
	DonorName        string             `json:"donorName" bson:"donorName"`
	Amount           float64            `json:"amount" bson:"amount"`
	Message          string             `json:"message" bson:"message"`
	IsRecurring      bool               `json:"isRecurring" bson:"isRecurring"`
	Frequency        string             `json:"frequency" bson:"frequency"`
	NextDonationDate string             `json:"nextDonationDate,omitempty" bson:"nextDonationDate,omitempty"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
