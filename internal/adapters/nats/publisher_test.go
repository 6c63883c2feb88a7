package natsadapter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	natsadapter "github.com/samirrijal/mapposter/internal/adapters/nats"
)

func TestNewPublisher_Unreachable(t *testing.T) {
	p, err := natsadapter.NewPublisher("nats://127.0.0.1:1", "mapposter.poster.generated", "mapposter-test", 200*time.Millisecond)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "nats connect")
}
