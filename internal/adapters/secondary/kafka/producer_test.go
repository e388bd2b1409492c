package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEvent(t *testing.T) {
	cfg := &Config{Topic: "events"}
	sync := mocks.NewSyncProducer(t, mocks.NewTestConfig())

	event := domain.ReportEvent{
		ID:        uuid.New(),
		Type:      domain.EventChartComputed,
		ObjectID:  "c1",
		CreatedAt: time.Now().UTC(),
	}

	sync.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "events", msg.Topic)
		key, _ := msg.Key.Encode()
		assert.Equal(t, "c1", string(key))

		raw, _ := msg.Value.Encode()
		var got domain.ReportEvent
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, domain.EventChartComputed, got.Type)

		require.Len(t, msg.Headers, 2)
		assert.Equal(t, "event_type", string(msg.Headers[0].Key))
		assert.Equal(t, "chart.computed", string(msg.Headers[0].Value))
		return nil
	})

	p := NewProducerWithClient(sync, cfg, logger.Nop())
	require.NoError(t, p.PublishEvent(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestPublishEventFailure(t *testing.T) {
	sync := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	sync.ExpectSendMessageAndFail(errors.New("broker down"))

	p := NewProducerWithClient(sync, &Config{Topic: "events"}, logger.Nop())
	err := p.PublishEvent(context.Background(), domain.ReportEvent{ObjectID: "c1"})
	assert.ErrorContains(t, err, "kafka send failed")
	require.NoError(t, p.Close())
}

func TestSASLConfig(t *testing.T) {
	cfg := newSaramaConfig(&Config{SecurityProtocol: "SASL_SSL", SASLMechanism: "SCRAM-SHA-256", SASLUsername: "u"})
	assert.True(t, cfg.Net.SASL.Enable)
	assert.True(t, cfg.Net.TLS.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypeSCRAMSHA256), cfg.Net.SASL.Mechanism)
}

func TestConfigBrokers(t *testing.T) {
	var empty *Config
	assert.False(t, empty.Enabled())
	cfg := &Config{Brokers: "a:9092, b:9092"}
	assert.True(t, cfg.Enabled())
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.GetBrokers())
}
