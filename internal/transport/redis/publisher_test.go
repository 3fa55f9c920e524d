package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
)

const testChannel = "tictactoe:test"

func TestNewPublisher(t *testing.T) {
	t.Run("Connects to a running server", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: creating a publisher for the suite's Redis
		publisher, err := NewPublisher(ctx, st.RedisAddr, testChannel)

		// Then: it is ready to use
		require.NoError(t, err)
		require.NoError(t, publisher.Close())
	})

	t.Run("Rejects an empty channel", func(t *testing.T) {
		_, err := NewPublisher(context.Background(), "localhost:0", "")

		require.ErrorIs(t, err, ErrChannelNotSet)
	})
}

func TestPublisher_Notify(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a subscriber on the channel
	subscriber := st.Redis.Subscribe(ctx, testChannel)
	t.Cleanup(func() { _ = subscriber.Close() })

	_, err := subscriber.Receive(ctx)
	require.NoError(t, err)

	publisher := NewPublisherFromClient(st.Redis, testChannel)

	controller := tictactoe.NewGameController(entity.PlayerX)
	controller.Place(entity.MustCell(1, 1))
	event := usecase.Event{
		SessionID: "session-1",
		Command:   usecase.CommandPlaceMark,
		Accepted:  true,
		Snapshot:  controller.Snapshot(),
	}

	// When: an event is published
	require.NoError(t, publisher.Notify(ctx, event))

	// Then: the subscriber receives the JSON event
	message, err := subscriber.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, testChannel, message.Channel)

	var received usecase.Event
	require.NoError(t, json.Unmarshal([]byte(message.Payload), &received))
	assert.Equal(t, event, received)
	assert.Equal(t, entity.PlayerX, received.Snapshot.Board.At(entity.MustCell(1, 1)))
}
