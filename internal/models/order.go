package models

import "time"

// OrderStatus is the lifecycle of a confirmed order. This is a separate
// vocabulary from DevisStatus; see the transition tables in internal/status.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is a confirmed purchase of a truck. No public flow creates orders
// today; the type exists for the back-office.
type Order struct {
	ID            string      `bson:"id" json:"id"`
	TruckID       string      `bson:"truckId" json:"truckId"`
	TruckName     string      `bson:"truckName" json:"truckName"`
	CustomerName  string      `bson:"customerName" json:"customerName"`
	CustomerEmail string      `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone string      `bson:"customerPhone" json:"customerPhone"`
	Message       string      `bson:"message" json:"message"`
	Status        OrderStatus `bson:"status" json:"status"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}
