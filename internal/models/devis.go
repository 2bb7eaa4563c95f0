package models

import "time"

// DevisStatus is the lifecycle of a quote request. It is distinct from
// OrderStatus and the two vocabularies must never be conflated.
type DevisStatus string

const (
	DevisPending  DevisStatus = "pending"
	DevisQuoted   DevisStatus = "quoted"
	DevisAccepted DevisStatus = "accepted"
	DevisRejected DevisStatus = "rejected"
)

// Devis is a customer's quote request for a truck, or a general inquiry when
// TruckID is empty. TruckName is a denormalized snapshot taken at creation.
// Intake always creates it in "pending"; only admin triage advances it.
type Devis struct {
	ID            string      `bson:"id" json:"id"`
	TruckID       string      `bson:"truckId" json:"truckId"`
	TruckName     string      `bson:"truckName" json:"truckName"`
	CustomerName  string      `bson:"customerName" json:"customerName"`
	CustomerEmail string      `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string      `bson:"customerPhone" json:"customerPhone"`
	Message       string      `bson:"message" json:"message"`
	Status        DevisStatus `bson:"status" json:"status"`
	QuoteAmount   *float64    `bson:"quoteAmount,omitempty" json:"quoteAmount,omitempty"`
	QuoteMessage  string      `bson:"quoteMessage,omitempty" json:"quoteMessage,omitempty"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// DevisUpdate carries the fields admin triage may change.
type DevisUpdate struct {
	Status       *DevisStatus `json:"status"`
	QuoteAmount  *float64     `json:"quoteAmount"`
	QuoteMessage *string      `json:"quoteMessage"`
}

// Apply copies the non-nil fields onto d.
func (u DevisUpdate) Apply(d *Devis) {
	if u.Status != nil {
		d.Status = *u.Status
	}
	if u.QuoteAmount != nil {
		d.QuoteAmount = u.QuoteAmount
	}
	if u.QuoteMessage != nil {
		d.QuoteMessage = *u.QuoteMessage
	}
}
