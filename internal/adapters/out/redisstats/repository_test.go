package redisstats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsKey(t *testing.T) {
	t.Run("should format key with driver email and calendar day", func(t *testing.T) {
		day := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

		key := statsKey("driver@grabngo.com", day)

		assert.Equal(t, "driver:stats:driver@grabngo.com:2025-06-15", key)
	})

	t.Run("should normalize to UTC before taking the day", func(t *testing.T) {
		// 23:30 in UTC-5 is already the next day in UTC.
		est := time.FixedZone("EST", -5*60*60)
		day := time.Date(2025, 6, 15, 23, 30, 0, 0, est)

		key := statsKey("driver@grabngo.com", day)

		assert.Equal(t, "driver:stats:driver@grabngo.com:2025-06-16", key)
	})
}
