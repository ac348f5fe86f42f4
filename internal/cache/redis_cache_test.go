package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache_SetAndGet(t *testing.T) {
	c := NewInMemoryCache()

	err := c.Set(context.Background(), "key", []byte("value"), time.Minute)
	assert.NoError(t, err)

	val, err := c.Get(context.Background(), "key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("value"), val)
}

func TestInMemoryCache_Miss(t *testing.T) {
	c := NewInMemoryCache()

	val, err := c.Get(context.Background(), "missing")
	assert.Nil(t, val)
	assert.Equal(t, ErrCacheMiss, err)
}

func TestInMemoryCache_Expiry(t *testing.T) {
	c := NewInMemoryCache()

	err := c.Set(context.Background(), "key", []byte("value"), -time.Second)
	assert.NoError(t, err)

	val, err := c.Get(context.Background(), "key")
	assert.Nil(t, val)
	assert.Equal(t, ErrCacheMiss, err)
}

func TestInMemoryCache_DeleteByPattern(t *testing.T) {
	c := NewInMemoryCache()
	ctx := context.Background()

	c.Set(ctx, "products:list::10", []byte("page1"), time.Minute)
	c.Set(ctx, "products:list:abc:10", []byte("page2"), time.Minute)
	c.Set(ctx, "other:key", []byte("keep"), time.Minute)

	err := c.DeleteByPattern(ctx, "products:list:*")
	assert.NoError(t, err)

	_, err = c.Get(ctx, "products:list::10")
	assert.Equal(t, ErrCacheMiss, err)
	_, err = c.Get(ctx, "products:list:abc:10")
	assert.Equal(t, ErrCacheMiss, err)

	val, err := c.Get(ctx, "other:key")
	assert.NoError(t, err)
	assert.Equal(t, []byte("keep"), val)
}

func TestGetSetJSON(t *testing.T) {
	c := NewInMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	err := SetJSON(ctx, c, "key", payload{Name: "widget", Count: 3}, time.Minute)
	assert.NoError(t, err)

	var got payload
	err = GetJSON(ctx, c, "key", &got)
	assert.NoError(t, err)
	assert.Equal(t, payload{Name: "widget", Count: 3}, got)
}
