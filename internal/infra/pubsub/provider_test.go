package pubsub

import (
	"context"
	"testing"

	"board/config"
	"board/internal/domain/constants"
	"board/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantErr  string
		wantType any
	}{
		{name: "not configured", pubsub: nil, wantType: &noopPublisher{}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{
			name:     "local",
			pubsub:   &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999/push"},
			wantType: &localHTTPPublisher{},
		},
		{
			name:    "local without endpoint",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "comments"},
			wantErr: "project ID is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishCommentEvent(context.Background(), &service.CommentEvent{Type: service.CommentEventCreated}))
	assert.NoError(t, publisher.Close())
}
