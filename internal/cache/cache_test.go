package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/channel-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	uid := int64(3)
	params := models.Page(2, 10)
	params.UserID = &uid
	params.ChannelType = "slack"

	k := NewKey(models.EntityUserChannels, params)

	assert.Equal(t, Key{
		Entity:  models.EntityUserChannels,
		Page:    2,
		Limit:   10,
		Filters: "search=&user_id=3&channel_type=slack",
	}, k)
	assert.NotEqual(t, k, NewKey(models.EntityUserChannels, models.Page(2, 10)))
	assert.Equal(t, Key{Entity: models.EntityUsers, Filters: "search=ann"}, NewKey(models.EntityUsers, models.ListParams{Search: "ann"}))
}

func TestFetch_CachesValue(t *testing.T) {
	c := New()
	key := NewKey(models.EntityUsers, models.Page(0, 10))
	calls := 0
	fn := func() ([]int, error) {
		calls++
		return []int{calls}, nil
	}

	first, err := Fetch(c, key, fn)
	require.NoError(t, err)
	second, err := Fetch(c, key, fn)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c := New()
	key := NewKey(models.EntityUsers, models.Page(0, 10))

	_, err := Fetch(c, key, func() (int, error) { return 0, errors.New("down") })
	require.Error(t, err)

	v, err := Fetch(c, key, func() (int, error) { return 5, nil })
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestFetch_DeduplicatesConcurrentCalls(t *testing.T) {
	c := New()
	key := NewKey(models.EntityChannels, models.Page(0, 10))

	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	fn := func() (string, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return "ok", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 5)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = Fetch(c, key, fn)
	}()
	<-started
	for i := 1; i < len(results); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Fetch(c, key, fn)
		}(i)
	}
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(2))
	for _, r := range results {
		assert.Equal(t, "ok", r)
	}
}

func TestInvalidate_OnlyDropsThatEntity(t *testing.T) {
	c := New()
	users := NewKey(models.EntityUsers, models.Page(0, 10))
	users2 := NewKey(models.EntityUsers, models.Page(1, 10))
	channels := NewKey(models.EntityChannels, models.Page(0, 10))

	for _, k := range []Key{users, users2, channels} {
		_, err := Fetch(c, k, func() (int, error) { return 1, nil })
		require.NoError(t, err)
	}
	require.Equal(t, 3, c.Len())

	c.Invalidate(models.EntityUsers)

	assert.Equal(t, 1, c.Len())
	refetched := false
	_, _ = Fetch(c, users, func() (int, error) { refetched = true; return 2, nil })
	assert.True(t, refetched)

	channelRefetched := false
	_, _ = Fetch(c, channels, func() (int, error) { channelRefetched = true; return 2, nil })
	assert.False(t, channelRefetched)
}

func TestInvalidate_DropsInFlightResult(t *testing.T) {
	c := New()
	key := NewKey(models.EntityUsers, models.Page(0, 10))
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan int)

	go func() {
		v, _ := Fetch(c, key, func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
		done <- v
	}()

	<-started
	c.Invalidate(models.EntityUsers)
	close(release)

	assert.Equal(t, 1, <-done, "the caller still gets its result")
	assert.Zero(t, c.Len(), "a superseded result is not stored")

	calls := 0
	v, err := Fetch(c, key, func() (int, error) { calls++; return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, calls)
}
