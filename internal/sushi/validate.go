package sushi

import (
	"strconv"
	"strings"
)

const maxNameLength = 50

// CreateInput is the raw create-form input. Price and Pieces arrive as the
// text the user typed, validation parses them.
type CreateInput struct {
	Name     string `json:"name"`
	Type     Type   `json:"type"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	FishType string `json:"fishType,omitempty"`
	Pieces   string `json:"pieces,omitempty"`
}

// Validate applies the create rules and returns a *ValidationError keyed by
// field name when any rule fails. Valid input returns nil.
func (in CreateInput) Validate() error {
	fields := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "Name is required"
	} else if len(in.Name) > maxNameLength {
		fields["name"] = "Name is too long"
	}

	if !in.Type.Valid() {
		fields["type"] = "Type must be Nigiri or Roll"
	}

	if in.Price == "" {
		fields["price"] = "Price is required"
	} else if v, err := strconv.ParseFloat(in.Price, 64); err != nil {
		fields["price"] = "Price must be a number"
	} else if v <= 0 {
		fields["price"] = "Price must be greater than 0"
	}

	if in.Type == TypeNigiri && in.FishType == "" {
		fields["fishType"] = "Fish type is required for Nigiri"
	}

	if in.Type == TypeRoll {
		if in.Pieces == "" {
			fields["pieces"] = "Number of pieces is required for Roll"
		} else if n, err := strconv.Atoi(in.Pieces); err != nil {
			fields["pieces"] = "Pieces must be a valid number"
		} else if n <= 0 {
			fields["pieces"] = "Pieces must be greater than 0"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToSushi converts validated input into a domain item without id or
// timestamp. Call Validate first, unparsable pieces become zero here.
func (in CreateInput) ToSushi() Sushi {
	s := Sushi{
		Name:  in.Name,
		Image: in.Image,
		Price: in.Price,
		Type:  in.Type,
	}

	switch in.Type {
	case TypeNigiri:
		s.Details = NigiriDetails{FishType: in.FishType}
	case TypeRoll:
		n, _ := strconv.Atoi(in.Pieces)
		s.Details = RollDetails{Pieces: n}
	}

	return s
}
