package order

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/corray333/storefront/internal/service/models/orderitem"
)

var (
	ErrInvalidFulfillment = errors.New("invalid fulfillment mode")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrOrderNotFound      = errors.New("order not found")
)

// Fulfillment is how the customer receives the order.
type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
	FulfillmentBoth     Fulfillment = "both"
)

func (f Fulfillment) String() string {
	return string(f)
}

func (f Fulfillment) Value() (driver.Value, error) {
	return f.String(), nil
}

// ParseFulfillment parses a fulfillment mode. An empty string defaults to pickup.
func ParseFulfillment(s string) (Fulfillment, error) {
	switch s {
	case "", FulfillmentPickup.String():
		return FulfillmentPickup, nil
	case FulfillmentDelivery.String():
		return FulfillmentDelivery, nil
	case FulfillmentBoth.String():
		return FulfillmentBoth, nil
	default:
		return "", ErrInvalidFulfillment
	}
}

// Status is the administrative lifecycle state of an order.
// Checkout only ever creates orders in StatusNew; later moves are
// administrative and validated by CanTransitionTo.
type Status string

const (
	StatusNew            Status = "New"
	StatusConfirmed      Status = "Confirmed"
	StatusPacked         Status = "Packed"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Value() (driver.Value, error) {
	return s.String(), nil
}

func ParseStatus(raw string) (Status, error) {
	switch raw {
	case StatusNew.String():
		return StatusNew, nil
	case StatusConfirmed.String():
		return StatusConfirmed, nil
	case StatusPacked.String():
		return StatusPacked, nil
	case StatusOutForDelivery.String():
		return StatusOutForDelivery, nil
	case StatusDelivered.String():
		return StatusDelivered, nil
	case StatusCancelled.String():
		return StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

var transitions = map[Status][]Status{
	StatusNew:            {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusPacked, StatusCancelled},
	StatusPacked:         {StatusOutForDelivery, StatusDelivered, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// CanTransitionTo reports whether the status may move to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Order represents a placed order in the system.
type Order struct {
	ID          int64                 `json:"id"`
	CustomerID  int64                 `json:"customerId"`
	Fulfillment Fulfillment           `json:"fulfillment"`
	Phone       string                `json:"phone"`
	Whatsapp    string                `json:"whatsapp"`
	Address     string                `json:"address,omitempty"`
	Notes       string                `json:"notes,omitempty"`
	Status      Status                `json:"status"`
	CreatedAt   time.Time             `json:"createdAt"`
	OrderItems  []orderitem.OrderItem `json:"orderItems"`
}
