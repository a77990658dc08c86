package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUTCClockNow(t *testing.T) {
	before := time.Now()
	now := New().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Truncate(time.Second)))
}
