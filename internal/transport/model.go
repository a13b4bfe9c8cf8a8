package transport

import "time"

// Option is a transport choice offered on orders.
type Option struct {
	ID            int64     `json:"id"`
	TransportName string    `json:"transport_name"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// Input carries the writable fields of an Option.
type Input struct {
	TransportName string
	Description   string
}
