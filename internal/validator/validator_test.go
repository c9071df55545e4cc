package validator

import (
	"testing"

	"domwork_backend/internal/models"
	"domwork_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		Role:     models.UserRoleWorker,
		Name:     "Ivan",
		Email:    "ivan@example.com",
		Password: "secret1",
	}
	assert.NoError(t, v.Validate(&valid))
}

// Ключи в карте ошибок - JSON-имена полей, не Go-имена
func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	invalid := dto.RegisterRequest{
		Role:     "admin",
		Name:     "I",
		Email:    "not-an-email",
		Password: "123",
	}

	err := v.Validate(&invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)

	assert.Contains(t, vErr.Errors, "role")
	assert.Contains(t, vErr.Errors, "name")
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_CompleteJobRequest(t *testing.T) {
	v := New()

	// Оценка опциональна
	assert.NoError(t, v.Validate(&dto.CompleteJobRequest{}))

	good := 5
	assert.NoError(t, v.Validate(&dto.CompleteJobRequest{Rating: &good}))

	tooHigh := 6
	err := v.Validate(&dto.CompleteJobRequest{Rating: &tooHigh})
	require.Error(t, err)

	tooLow := 0
	err = v.Validate(&dto.CompleteJobRequest{Rating: &tooLow})
	require.Error(t, err)
}

func TestValidate_CreateOfferRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.CreateOfferRequest{WorkerID: "not-a-uuid"})
	require.Error(t, err)

	assert.NoError(t, v.Validate(&dto.CreateOfferRequest{
		WorkerID: "6ba7b810-9dad-41d1-80b4-00c04fd430c8",
	}))
}
