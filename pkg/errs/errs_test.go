package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIs_MatchesWrappedKind(t *testing.T) {
	err := Validation("tempo out of range")
	assert.True(t, Is(err, KindValidation))
	assert.False(t, Is(err, KindFilesystem))
}

func TestIs_FilesystemWrapsCauseMessage(t *testing.T) {
	cause := errors.New("disk full")
	err := Filesystem(cause, "could not write track")
	assert.True(t, Is(err, KindFilesystem))
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "could not write track")
}

func TestIs_FalseForUnrelatedError(t *testing.T) {
	err := errors.New("some other failure")
	assert.False(t, Is(err, KindValidation))
}

func TestError_StringFormat(t *testing.T) {
	err := &Error{Kind: KindLLMRefiner, Message: "timeout"}
	assert.Equal(t, "llm_refiner_error: timeout", err.Error())
}
