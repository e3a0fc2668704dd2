package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewKeyViolationError("duplicate unit 2 in crash 2019000123"),
			want: "[KEY_VIOLATION] duplicate unit 2 in crash 2019000123",
		},
		{
			name: "with cause",
			err:  NewStorageError("failed to create CSV file", stderrors.New("permission denied")),
			want: "[STORAGE] failed to create CSV file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := NewParsingError("bad row", cause)

	require.True(t, stderrors.Is(err, cause))

	var appErr *AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, ErrTypeParsing, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewJoinGapError("no crash match").WithContext("crn", "2019000456")

	assert.Equal(t, "2019000456", err.Context["crn"])
}

func TestIsType(t *testing.T) {
	err := NewKeyViolationError("duplicate key")

	assert.True(t, IsType(err, ErrTypeKeyViolation))
	assert.False(t, IsType(err, ErrTypeJoinGap))
	assert.False(t, IsType(stderrors.New("plain"), ErrTypeKeyViolation))
}
