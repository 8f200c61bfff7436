package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSeeded(t *testing.T) {
	a := assert.New(t)

	g1 := NewSeeded(42)
	g2 := NewSeeded(42)
	for i := 0; i < 20; i++ {
		a.Equal(g1.Intn(70), g2.Intn(70))
	}
}

func TestNew(t *testing.T) {
	_, isCrypto := New(0).(Crypto)
	assert.True(t, isCrypto)

	_, isCrypto = New(5).(Crypto)
	assert.False(t, isCrypto)
}
