package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_WithoutSentry(t *testing.T) {
	require.NoError(t, Initialize(Config{Service: "treat-api", Debug: true}))
	assert.Nil(t, sentryClient)
	assert.NotNil(t, FromContext(context.Background()))
	//nolint:staticcheck
	assert.NotNil(t, FromContext(nil))
}

func TestInitialize_InvalidDSN(t *testing.T) {
	err := Initialize(Config{SentryDSN: "not-a-dsn"})
	assert.Error(t, err)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "error occurred", errorMessage(nil))
	assert.Equal(t, "boom", errorMessage(errors.New("boom")))
}
