package vte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamPushRespectsSubparamCap(t *testing.T) {
	var p Param
	for i := 0; i < maxSubparams; i++ {
		assert.True(t, p.push(uint16(i)))
	}
	assert.False(t, p.push(999))
	assert.Equal(t, maxSubparams, p.Len())
}

func TestParamFirstDefaultsWhenEmpty(t *testing.T) {
	var p Param
	assert.Equal(t, uint16(7), p.First(7))
	p.push(3)
	assert.Equal(t, uint16(3), p.First(7))
}

func TestParamGetOutOfRange(t *testing.T) {
	var p Param
	p.push(5)
	assert.Equal(t, uint16(0), p.Get(-1))
	assert.Equal(t, uint16(0), p.Get(1))
	assert.Equal(t, uint16(5), p.Get(0))
}

func TestParamsIsFullAtCapacity(t *testing.T) {
	var params Params
	assert.True(t, params.IsEmpty())
	for i := 0; i < maxParams; i++ {
		assert.False(t, params.isFull())
		params.items[params.len].push(uint16(i))
		params.len++
	}
	assert.True(t, params.isFull())
	assert.Equal(t, maxParams, params.Len())
}

func TestParamsAtOutOfRangeReturnsZeroValue(t *testing.T) {
	var params Params
	got := params.At(0)
	assert.Equal(t, 0, got.Len())
}

func TestParamsResetClearsEntries(t *testing.T) {
	var params Params
	params.items[0].push(9)
	params.len = 1
	params.reset()
	assert.Equal(t, 0, params.Len())
	assert.Equal(t, 0, params.At(0).Len())
}
