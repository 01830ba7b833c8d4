package redis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNamespacing(t *testing.T) {
	idem := KeyIdemReserve(42, "abc-123")
	assert.Equal(t, "skybook:v1:idem:reserve:42:abc-123", idem)

	rl := KeyRateLimit("reserve", "ip:10.0.0.1")
	assert.Equal(t, "skybook:v1:rl:reserve:ip:10.0.0.1", rl)

	assert.True(t, strings.HasPrefix(ChannelFlightsChanged(), "skybook:v1:"))

	// same flight, different idempotency keys must not collide
	assert.NotEqual(t, KeyIdemReserve(42, "a"), KeyIdemReserve(42, "b"))
}
