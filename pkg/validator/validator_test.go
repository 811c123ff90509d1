package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,min=2"`
	Limit int    `validate:"min=1,max=50"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateStruct(sample{Name: "ok", Limit: 20}))

	err := ValidateStruct(sample{Name: "x", Limit: 51})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: min")
	assert.Contains(t, err.Error(), "Field: Limit, Tag: max")
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidateEmail("user@example.com"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail(""))
}

type withMessages struct {
	Score int    `validate:"min=0,max=100" message:"Score must be between 0 and 100"`
	Note  string `validate:"max=3"`
}

func TestValidateMessage(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateMessage(&withMessages{Score: 50}))

	err := ValidateMessage(&withMessages{Score: 101})
	require.EqualError(t, err, "Score must be between 0 and 100")

	err = ValidateMessage(withMessages{Score: 1, Note: "toolong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Note, Tag: max")
}
