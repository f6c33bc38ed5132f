package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSenderValidate(t *testing.T) {
	ok := SenderInfo{Email: "a@b.com", FullName: "A B", Phone: "08012345678"}
	assert.True(t, ok.Validate().OK())

	t.Run("email format", func(t *testing.T) {
		s := ok
		s.Email = "not-an-email"
		errs := s.Validate()
		assert.Contains(t, errs, "email")
	})

	t.Run("empty fields", func(t *testing.T) {
		errs := SenderInfo{}.Validate()
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "fullName")
		assert.Contains(t, errs, "phone")
	})

	t.Run("phone needs ten digits after stripping", func(t *testing.T) {
		s := ok
		s.Phone = "0801-234-5678"
		assert.True(t, s.Validate().OK(), "separators are stripped before counting")

		s.Phone = "080-1234"
		assert.Contains(t, s.Validate(), "phone")
	})
}

func TestRecipientValidate(t *testing.T) {
	ok := RecipientInfo{
		Email: "r@b.com", FullName: "R B", Phone: "08098765432",
		Address: "12 Marina Rd", City: "Lagos", State: "Lagos",
	}
	assert.True(t, ok.Validate().OK())

	t.Run("message is optional", func(t *testing.T) {
		r := ok
		r.Message = ""
		assert.True(t, r.Validate().OK())
	})

	t.Run("delivery fields required", func(t *testing.T) {
		errs := RecipientInfo{Email: "r@b.com", FullName: "R B", Phone: "08098765432"}.Validate()
		assert.Contains(t, errs, "address")
		assert.Contains(t, errs, "city")
		assert.Contains(t, errs, "state")
	})
}
