package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	digest, err := Password("s3cret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-password", digest)
	assert.True(t, Verify("s3cret-password", digest))
	assert.False(t, Verify("wrong-password", digest))
}

func TestPasswordSalted(t *testing.T) {
	first, err := Password("same-input")
	require.NoError(t, err)
	second, err := Password("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same-input", first))
	assert.True(t, Verify("same-input", second))
}
