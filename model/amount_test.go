package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vrpstack/optiroute/model"
)

func TestAmountArithmetic(t *testing.T) {
	a := model.NewAmount(3, 4)
	b := model.NewAmount(1, 2)
	assert.Equal(t, model.NewAmount(4, 6), a.Add(b))
	assert.Equal(t, model.NewAmount(2, 2), a.Sub(b))
}

func TestAmountLessEq(t *testing.T) {
	a := model.NewAmount(1, 2)
	b := model.NewAmount(1, 3)
	assert.True(t, a.LessEq(b))
	assert.False(t, b.LessEq(a))
}

func TestAmountLexLess(t *testing.T) {
	a := model.NewAmount(1, 100)
	b := model.NewAmount(2, 0)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestAmountMismatchPanics(t *testing.T) {
	a := model.NewAmount(1)
	b := model.NewAmount(1, 2)
	assert.Panics(t, func() { a.Add(b) })
}

func TestAmountZeroAndMax(t *testing.T) {
	z := model.ZeroAmount(2)
	assert.True(t, z.IsZero())
	m := model.NewAmount(1, 5).Max(model.NewAmount(3, 2))
	assert.Equal(t, model.NewAmount(3, 5), m)
}
