package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recyclehub/pkg/logger"
)

func TestFeed_RingBuffer(t *testing.T) {
	f := NewFeed(3)
	ctx := context.Background()

	assert.Empty(t, f.List())

	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		f.Notify(ctx, Notification{Level: LevelSuccess, Message: msg})
	}

	list := f.List()
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].Message)
	assert.Equal(t, "e", list[2].Message)
	assert.Equal(t, int64(5), list[2].ID)
	assert.False(t, list[0].Time.IsZero())
}

func TestFeed_Since(t *testing.T) {
	f := NewFeed(10)
	ctx := context.Background()
	for _, msg := range []string{"a", "b", "c"} {
		f.Notify(ctx, Notification{Message: msg})
	}

	since := f.Since(1)
	require.Len(t, since, 2)
	assert.Equal(t, "b", since[0].Message)
	assert.Empty(t, f.Since(3))
}

func TestFanout(t *testing.T) {
	a, b := NewFeed(2), NewFeed(2)
	sink := Fanout(a, b, NewLogNotifier(logger.Nop()))

	sink.Notify(context.Background(), Notification{Level: LevelError, Message: "Erro ao carregar vendas"})

	assert.Len(t, a.List(), 1)
	assert.Len(t, b.List(), 1)
}
