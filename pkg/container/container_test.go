package container

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter struct{ name string }

type greeting struct{ text string }

var (
	greeterType  = reflect.TypeOf((*greeter)(nil))
	greetingType = reflect.TypeOf((*greeting)(nil))
)

func TestContainer_RegisterAndGetSingleton(t *testing.T) {
	c := New()
	c.Register(func(c *Container) (*greeter, error) {
		return &greeter{name: "gopher"}, nil
	})

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.MustGet(greeterType)
		}(i)
	}
	wg.Wait()

	first := results[0]
	for _, r := range results {
		assert.Same(t, first, r)
	}
	assert.Equal(t, "gopher", first.(*greeter).name)
}

func TestContainer_FactoryCanResolveDependencies(t *testing.T) {
	c := New()
	c.Register(func(c *Container) (*greeter, error) {
		return &greeter{name: "Ada"}, nil
	})
	c.Register(func(c *Container) (*greeting, error) {
		g := c.MustGet(greeterType).(*greeter)
		return &greeting{text: "merhaba " + g.name}, nil
	})

	got, err := c.Get(greetingType)
	require.NoError(t, err)
	assert.Equal(t, "merhaba Ada", got.(*greeting).text)
}

func TestContainer_FactoryErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	c := New()
	c.Register(func(c *Container) (*greeter, error) {
		return nil, boom
	})

	_, err := c.Get(greeterType)
	assert.ErrorIs(t, err, boom)

	// Hatalı sonuç saklanmaz, sonraki çağrı fabrikayı yeniden çalıştırır
	_, err = c.Get(greeterType)
	assert.ErrorIs(t, err, boom)
}

func TestContainer_UnknownService(t *testing.T) {
	_, err := New().Get(greeterType)
	assert.Error(t, err)
	assert.Panics(t, func() { New().MustGet(greeterType) })
}

func TestContainer_InstanceAndHas(t *testing.T) {
	c := New()
	assert.False(t, c.Has(greeterType))

	g := &greeter{name: "Ken"}
	c.Instance(greeterType, g)

	assert.True(t, c.Has(greeterType))
	assert.Same(t, g, c.MustGet(greeterType))
}

func TestContainer_RegisterRejectsInvalidProviders(t *testing.T) {
	c := New()
	assert.Panics(t, func() { c.Register("not a func") })
	assert.Panics(t, func() { c.Register(func() (*greeter, error) { return nil, nil }) })
	assert.Panics(t, func() { c.Register(func(c *Container) *greeter { return nil }) })
}
