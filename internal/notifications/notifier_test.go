package notifications

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	n := NewNotifier(rdb)
	received := make(chan [2]string, 4)
	require.NoError(t, n.StartPatternSubscriber(ctx, func(channel, payload string) {
		received <- [2]string{channel, payload}
	}))

	// PSubscribe needs a moment to be registered before publishing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, n.PublishQuestion(ctx, 7, `{"type":"vote_updated"}`))
	require.NoError(t, n.PublishUser(ctx, 3, `{"type":"answer_accepted"}`))

	got := map[string]string{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-received:
			got[msg[0]] = msg[1]
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for published events")
		}
	}
	assert.Equal(t, `{"type":"vote_updated"}`, got["events:question:7"])
	assert.Equal(t, `{"type":"answer_accepted"}`, got["events:user:3"])
}

func TestNotifierNilRedisIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	ctx := context.Background()
	assert.NoError(t, n.PublishQuestion(ctx, 1, "x"))
	assert.NoError(t, n.PublishUser(ctx, 1, "x"))
	assert.NoError(t, n.StartPatternSubscriber(ctx, nil))
}
