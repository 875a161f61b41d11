package domain

import "time"

type Location struct {
	ID                int32     `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	TransportFeeCents int32     `json:"transport_fee_cents"`
	Active            bool      `json:"active"`
	CreatedOn         time.Time `json:"created_on"`
	UpdatedOn         time.Time `json:"updated_on"`
}
