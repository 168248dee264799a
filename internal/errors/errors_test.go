package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/destinyrpg/destiny-api/internal/errors"
)

func TestError_Error(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "action not found")
	assert.Equal(t, "NOT_FOUND: action not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("redis: connection refused"), "failed to load action")
	assert.Equal(t, "INTERNAL: failed to load action: redis: connection refused", wrapped.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("result res_123 not found")
	wrapped := errors.Wrap(inner, "failed to fetch result")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "should be nil"))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := errors.Wrap(stderrors.New("boom"), "something failed")
	assert.Equal(t, errors.CodeInternal, errors.GetCode(wrapped))
	assert.True(t, errors.IsInternal(wrapped))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeOutOfRange, errors.GetCode(errors.OutOfRange("draw size")))
}

func TestWithMeta(t *testing.T) {
	err := errors.InvalidArgument("bad draw size").
		WithMeta("cards_to_draw", 11)

	require.NotNil(t, err.Meta)
	assert.Equal(t, 11, err.Meta["cards_to_draw"])
}

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeOK, 200},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeOutOfRange, 400},
		{errors.CodeNotFound, 404},
		{errors.CodeAlreadyExists, 409},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.HTTPStatus(), "code %s", tt.code)
	}
}

func TestValidationBuilder(t *testing.T) {
	err := errors.NewValidationBuilder().Build()
	assert.NoError(t, err)

	err = errors.NewValidationBuilder().
		RequiredField("CharacterID").
		Fieldf("CardsToDraw", "must be between %d and %d", 1, 10).
		Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	var structured *errors.Error
	require.True(t, errors.As(err, &structured))
	assert.Contains(t, structured.Meta, "validation_errors")
}
