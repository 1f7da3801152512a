package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetGet(t *testing.T) {
	c := New()
	c.Set("leads_csv", "ID,Nome", time.Minute)

	value, found := c.Get("leads_csv")
	assert.True(t, found)
	assert.Equal(t, "ID,Nome", value)

	_, found = c.Get("outra-chave")
	assert.False(t, found)
}

func TestCache_Expiration(t *testing.T) {
	c := New()
	c.Set("leads_csv", "ID,Nome", time.Nanosecond)

	time.Sleep(time.Millisecond)

	_, found := c.Get("leads_csv")
	assert.False(t, found)
}

func TestCache_Invalidate(t *testing.T) {
	c := New()
	c.Set("leads_csv", "ID,Nome", time.Minute)
	c.Invalidate("leads_csv")

	_, found := c.Get("leads_csv")
	assert.False(t, found)
}

func TestCache_DeleteExpired(t *testing.T) {
	c := New()
	c.Set("velho", "a", time.Nanosecond)
	c.Set("novo", "b", time.Minute)

	time.Sleep(time.Millisecond)
	c.DeleteExpired()

	_, found := c.Get("velho")
	assert.False(t, found)
	value, found := c.Get("novo")
	assert.True(t, found)
	assert.Equal(t, "b", value)
}
