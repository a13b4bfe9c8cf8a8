package party

import "time"

// Creator is the user who recorded a party.
type Creator struct {
	Name string `json:"name"`
}

// Party is a customer that orders are placed for.
type Party struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Pincode     string    `json:"pincode"`
	PhoneNumber string    `json:"phone_number"`
	GSTNumber   string    `json:"gst_number"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Creator     *Creator  `json:"user_profiles"`
}

// Input carries the writable fields of a Party. Omitted optional fields are stored as "".
type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	PhoneNumber string `json:"phone_number"`
	GSTNumber   string `json:"gst_number"`
}
