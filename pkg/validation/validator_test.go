package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

func TestStruct_FirstFieldFollowsDeclarationOrder(t *testing.T) {
	err := Struct(signup{Password: "abc"})
	require.Error(t, err)

	field, tag, ok := FirstField(err)
	require.True(t, ok)
	assert.Equal(t, "fullName", field)
	assert.Equal(t, "required", tag)

	err = Struct(signup{FullName: "A", Email: "a@b.c", Password: "abc"})
	field, tag, ok = FirstField(err)
	require.True(t, ok)
	assert.Equal(t, "password", field)
	assert.Equal(t, "min", tag)
}

func TestFirstField_NotAValidationError(t *testing.T) {
	_, _, ok := FirstField(assert.AnError)
	assert.False(t, ok)
}

func TestToDetails(t *testing.T) {
	assert.Nil(t, ToDetails(nil))

	details := ToDetails(Struct(signup{}))
	assert.Equal(t, "is required", details["fullName"])
	assert.Equal(t, "is required", details["email"])
	assert.Equal(t, "is required", details["password"])

	assert.Equal(t, map[string]string{"payload": "invalid payload"}, ToDetails(assert.AnError))

	var v map[string]any
	synErr := json.Unmarshal([]byte("{]"), &v)
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(synErr))
}
