package design

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ItemType is a garment category a design belongs to.
type ItemType struct {
	ID       int64  `json:"id"`
	ItemType string `json:"itemtype"`
}

// Color is a named shade grouped under a primary color.
type Color struct {
	ID           int64  `json:"id"`
	ColorName    string `json:"color_name"`
	PrimaryColor string `json:"primary_color"`
}

// Creator is the user who recorded a design.
type Creator struct {
	Name string `json:"name"`
}

// ItemTypeRef is the joined item type label.
type ItemTypeRef struct {
	ItemType string `json:"itemtype"`
}

// ColorRef is the joined color label.
type ColorRef struct {
	ColorName    string `json:"color_name"`
	PrimaryColor string `json:"primary_color"`
}

// Design is one (design number, item type, color) row.
type Design struct {
	ID           int64        `json:"id"`
	DesignNumber string       `json:"design_number"`
	ItemTypeID   int64        `json:"item_type_id"`
	ColorID      int64        `json:"color_id"`
	CreatedBy    string       `json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Creator      *Creator     `json:"user_profiles"`
	ItemType     *ItemTypeRef `json:"itemtype"`
	Color        *ColorRef    `json:"colors"`
}

// Input carries the writable fields of a single design row.
type Input struct {
	DesignNumber string
	ItemTypeID   int64
	ColorID      int64
}

// NumericID accepts a JSON number or a numeric string, since form-driven clients send both.
type NumericID int64

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = 0
			return nil
		}
		data = []byte(s)
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", data)
	}
	*n = NumericID(v)
	return nil
}
