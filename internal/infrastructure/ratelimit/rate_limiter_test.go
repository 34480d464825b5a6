package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustion(t *testing.T) {
	bucket := NewTokenBucket(2, 1, time.Minute)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.True(t, allowed)

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestRateLimiterIsolatesUsersAndActions(t *testing.T) {
	limiter := NewRateLimiter()

	allowed, _ := limiter.Allow("user-1", "upload_image")
	assert.True(t, allowed)

	// A different user or action draws from its own bucket.
	allowed, _ = limiter.Allow("user-2", "upload_image")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("user-1", "delete_listing")
	assert.True(t, allowed)
}
