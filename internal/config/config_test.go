package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimithub/claimit/internal/config"
)

func TestLoadKafkaBrokers(t *testing.T) {
	t.Setenv("ADMIN_NOTIFICATION_EMAIL", "admin@x.com")

	t.Run("empty broker list selects console mode", func(t *testing.T) {
		t.Setenv("KAFKA_BROKERS", "")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.KafkaBrokers)
	})

	t.Run("comma-separated brokers are split and trimmed", func(t *testing.T) {
		t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	})
}
