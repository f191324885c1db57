package ports

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	ctx := WithCorrelationID(context.Background(), "abc")
	require.Equal(t, "abc", GetCorrelationID(ctx))
	require.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestGenerateCorrelationIDIsUUIDv4(t *testing.T) {
	id := GenerateCorrelationID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())
	require.NotEqual(t, id, GenerateCorrelationID())
}
