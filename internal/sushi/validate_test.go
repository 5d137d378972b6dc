package sushi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}

func TestCreateInputValidate(t *testing.T) {
	validNigiri := CreateInput{Name: "Salmon Nigiri", Type: TypeNigiri, Price: "12.99", FishType: "Salmon"}
	validRoll := CreateInput{Name: "California Roll", Type: TypeRoll, Price: "8.50", Pieces: "6"}

	t.Run("Valid inputs", func(t *testing.T) {
		assert.NoError(t, validNigiri.Validate())
		assert.NoError(t, validRoll.Validate())
	})

	t.Run("Name required", func(t *testing.T) {
		in := validNigiri
		in.Name = "  "
		assert.Equal(t, "Name is required", fieldErrors(t, in.Validate())["name"])
	})

	t.Run("Name too long", func(t *testing.T) {
		in := validNigiri
		in.Name = strings.Repeat("x", 51)
		assert.Equal(t, "Name is too long", fieldErrors(t, in.Validate())["name"])
	})

	t.Run("Price rules", func(t *testing.T) {
		in := validNigiri

		in.Price = ""
		assert.Equal(t, "Price is required", fieldErrors(t, in.Validate())["price"])

		in.Price = "abc"
		assert.Equal(t, "Price must be a number", fieldErrors(t, in.Validate())["price"])

		in.Price = "0"
		assert.Equal(t, "Price must be greater than 0", fieldErrors(t, in.Validate())["price"])
	})

	t.Run("Unknown type", func(t *testing.T) {
		in := validNigiri
		in.Type = "Sashimi"
		assert.Contains(t, fieldErrors(t, in.Validate()), "type")
	})

	t.Run("Nigiri requires fish type", func(t *testing.T) {
		in := validNigiri
		in.FishType = ""
		assert.Equal(t, "Fish type is required for Nigiri", fieldErrors(t, in.Validate())["fishType"])
	})

	t.Run("Roll requires pieces", func(t *testing.T) {
		in := validRoll

		in.Pieces = ""
		assert.Equal(t, "Number of pieces is required for Roll", fieldErrors(t, in.Validate())["pieces"])

		in.Pieces = "six"
		assert.Equal(t, "Pieces must be a valid number", fieldErrors(t, in.Validate())["pieces"])

		in.Pieces = "0"
		assert.Equal(t, "Pieces must be greater than 0", fieldErrors(t, in.Validate())["pieces"])
	})

	t.Run("Multiple failures reported together", func(t *testing.T) {
		in := CreateInput{Type: TypeRoll}
		fields := fieldErrors(t, in.Validate())
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "price")
		assert.Contains(t, fields, "pieces")
	})
}

func TestCreateInputToSushi(t *testing.T) {
	t.Run("Nigiri", func(t *testing.T) {
		s := CreateInput{Name: "Tuna Nigiri", Type: TypeNigiri, Price: "10", FishType: "Tuna"}.ToSushi()
		assert.Equal(t, NigiriDetails{FishType: "Tuna"}, s.Details)
		assert.Empty(t, s.ID)
		assert.Empty(t, s.CreatedAt)
	})

	t.Run("Roll", func(t *testing.T) {
		s := CreateInput{Name: "Dragon Roll", Type: TypeRoll, Price: "14", Pieces: "8"}.ToSushi()
		assert.Equal(t, RollDetails{Pieces: 8}, s.Details)
	})
}
