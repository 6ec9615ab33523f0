package config_test

import (
	"testing"
	"time"

	"github.com/limbo/clover/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestTypedGetters(t *testing.T) {
	t.Setenv("CLOVER_TEST_INT", "42")
	t.Setenv("CLOVER_TEST_BAD_INT", "forty-two")
	t.Setenv("CLOVER_TEST_DURATION", "90s")
	t.Setenv("CLOVER_TEST_TZ", "Asia/Seoul")
	t.Setenv("CLOVER_TEST_BAD_TZ", "Mars/Olympus")
	cfg := config.New()

	assert.Equal(t, 42, cfg.GetInt("CLOVER_TEST_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("CLOVER_TEST_BAD_INT", 1))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("CLOVER_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("CLOVER_TEST_MISSING", time.Second))
	assert.Equal(t, "fallback", cfg.GetStringOr("CLOVER_TEST_MISSING", "fallback"))
	assert.Equal(t, "Asia/Seoul", cfg.GetLocation("CLOVER_TEST_TZ").String())
	assert.Equal(t, time.UTC, cfg.GetLocation("CLOVER_TEST_BAD_TZ"))
}
