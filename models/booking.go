package models

import "time"

// Booking status values. A booking starts pending; accepted and rejected
// are terminal.
const (
	BookingStatusPending  = "pending"
	BookingStatusAccepted = "accepted"
	BookingStatusRejected = "rejected"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Customer is the contact info captured at checkout.
type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// Appointment is the requested date and time, with optional notes.
type Appointment struct {
	Date  string `json:"date" bson:"date"`
	Time  string `json:"time" bson:"time"`
	Notes string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// BookingLineItem is a price snapshot copied from the cart at submission
// time. It never references live catalog records.
type BookingLineItem struct {
	ServiceName string  `json:"serviceName" bson:"serviceName"`
	OptionName  string  `json:"optionName" bson:"optionName"`
	Price       float64 `json:"price" bson:"price"`
}

// PaymentReference records the gateway handles for a verified card payment.
type PaymentReference struct {
	OrderID   string `json:"orderId,omitempty" bson:"orderId,omitempty"`
	PaymentID string `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
}

// Booking is one checkout attempt. Status is the only field mutated after
// creation, and only by an administrator.
type Booking struct {
	ID            string            `json:"id" bson:"id"`
	Customer      Customer          `json:"customer" bson:"customer"`
	Appointment   Appointment       `json:"appointment" bson:"appointment"`
	Services      []BookingLineItem `json:"services" bson:"services"`
	Total         float64           `json:"total" bson:"total"`
	PaymentMethod string            `json:"paymentMethod" bson:"paymentMethod"`
	Payment       PaymentReference  `json:"payment,omitempty" bson:"payment,omitempty"`
	Status        string            `json:"status" bson:"status"`
	CreatedAt     time.Time         `json:"createdAt" bson:"createdAt"`
}
