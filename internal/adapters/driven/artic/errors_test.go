package artic

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 503, Message: "maintenance", URL: "http://example.test/artworks"}

	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")
}

func TestIsNotFound(t *testing.T) {
	notFound := &APIError{StatusCode: 404}

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("fetch: %w", notFound)))
	assert.False(t, IsNotFound(&APIError{StatusCode: 500}))
	assert.False(t, IsNotFound(errors.New("not found")))
}

func TestIsRateLimited(t *testing.T) {
	throttled := &APIError{StatusCode: 429}

	assert.True(t, IsRateLimited(throttled))
	assert.False(t, IsRateLimited(&APIError{StatusCode: 404}))
	assert.False(t, IsRateLimited(nil))
}
