package sushi

import (
	"encoding/json"
	"fmt"
)

type Type string

const (
	TypeNigiri Type = "Nigiri"
	TypeRoll   Type = "Roll"
)

func (t Type) Valid() bool {
	return t == TypeNigiri || t == TypeRoll
}

// Details is the variant payload selected by Sushi.Type: a nigiri carries
// its fish type, a roll carries its piece count. Exactly one case is
// populated per item.
type Details interface {
	isDetails()
}

type NigiriDetails struct {
	FishType string
}

func (NigiriDetails) isDetails() {}

type RollDetails struct {
	Pieces int
}

func (RollDetails) isDetails() {}

// Sushi is one menu item. ID and CreatedAt are assigned by the catalog
// service and immutable afterwards.
type Sushi struct {
	ID        string
	CreatedAt string
	Name      string
	Image     string
	Price     string
	Type      Type
	Details   Details
}

// FishType returns the nigiri fish type, if this item is a nigiri.
func (s *Sushi) FishType() (string, bool) {
	if d, ok := s.Details.(NigiriDetails); ok {
		return d.FishType, true
	}
	return "", false
}

// Pieces returns the roll piece count, if this item is a roll.
func (s *Sushi) Pieces() (int, bool) {
	if d, ok := s.Details.(RollDetails); ok {
		return d.Pieces, true
	}
	return 0, false
}

// wireSushi is the flat JSON shape used by the catalog API.
type wireSushi struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"createdAt"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     string  `json:"price"`
	Type      Type    `json:"type"`
	FishType  *string `json:"fishType,omitempty"`
	Pieces    *int    `json:"pieces,omitempty"`
}

func (s Sushi) MarshalJSON() ([]byte, error) {
	w := wireSushi{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Name:      s.Name,
		Image:     s.Image,
		Price:     s.Price,
		Type:      s.Type,
	}

	switch d := s.Details.(type) {
	case NigiriDetails:
		w.FishType = &d.FishType
	case RollDetails:
		w.Pieces = &d.Pieces
	}

	return json.Marshal(w)
}

func (s *Sushi) UnmarshalJSON(data []byte) error {
	var w wireSushi
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	s.ID = w.ID
	s.CreatedAt = w.CreatedAt
	s.Name = w.Name
	s.Image = w.Image
	s.Price = w.Price
	s.Type = w.Type

	// The variant field that does not match the type is dropped. A missing
	// matching field decodes to the zero case, shape validation decides
	// whether that is acceptable.
	switch w.Type {
	case TypeNigiri:
		var fish string
		if w.FishType != nil {
			fish = *w.FishType
		}
		s.Details = NigiriDetails{FishType: fish}
	case TypeRoll:
		var pieces int
		if w.Pieces != nil {
			pieces = *w.Pieces
		}
		s.Details = RollDetails{Pieces: pieces}
	default:
		s.Details = nil
	}

	return nil
}

// ValidateShape checks that the item decoded from the wire matches the
// expected catalog item shape.
func (s *Sushi) ValidateShape() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrSchemaMismatch)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrSchemaMismatch)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrSchemaMismatch, string(s.Type))
	}
	return nil
}
