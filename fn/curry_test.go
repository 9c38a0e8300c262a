package fn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/fp_ive_go/fn"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func add2(a, b int) int       { return a + b }
func add3(a, b, c int) int    { return a + b + c }
func add4(a, b, c, d int) int { return a + b + c + d }

func TestCurry2(t *testing.T) {
	assert.Equal(t, add2(1, 2), fn.Curry2(add2)(1)(2))
}

func TestCurry3(t *testing.T) {
	assert.Equal(t, 6, fn.Curry3(add3)(1)(2)(3))
}

func TestCurry4(t *testing.T) {
	assert.Equal(t, 10, fn.Curry4(add4)(1)(2)(3)(4))
}

func TestCurry2_StepsAreReusable(t *testing.T) {
	addOne := fn.Curry2(add2)(1)
	// supplying the second argument twice must not disturb the captured first
	assert.Equal(t, 3, addOne(2))
	assert.Equal(t, 4, addOne(3))
	assert.Equal(t, 3, addOne(2))
}

func TestUncurry2_InvertsCurry2(t *testing.T) {
	assert.Equal(t, add2(3, 4), fn.Uncurry2(fn.Curry2(add2))(3, 4))
}

func TestPartial2(t *testing.T) {
	greet := func(greeting, name string) string {
		return fmt.Sprintf("%s, %s!", greeting, name)
	}
	hello := fn.Partial2(greet, "Hello")
	assert.Equal(t, "Hello, world!", hello("world"))
}

func TestPartial3(t *testing.T) {
	assert.Equal(t, add3(1, 2, 3), fn.Partial3(add3, 1)(2, 3))
}

func TestPartial2of3(t *testing.T) {
	assert.Equal(t, add3(1, 2, 3), fn.Partial2of3(add3, 1, 2)(3))
}

func TestPartial4(t *testing.T) {
	assert.Equal(t, add4(1, 2, 3, 4), fn.Partial4(add4, 1)(2, 3, 4))
}

func TestCurry_AgreesWithDirectApplication(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("curry2(f)(a)(b) == f(a,b)", prop.ForAll(
		func(a, b int) bool {
			return fn.Curry2(add2)(a)(b) == add2(a, b)
		},
		gen.Int(),
		gen.Int(),
	))

	properties.Property("curry3(f)(a)(b)(c) == f(a,b,c)", prop.ForAll(
		func(a, b, c int) bool {
			return fn.Curry3(add3)(a)(b)(c) == add3(a, b, c)
		},
		gen.Int(),
		gen.Int(),
		gen.Int(),
	))

	properties.Property("partial2(f,a)(b) == f(a,b)", prop.ForAll(
		func(a, b int) bool {
			return fn.Partial2(add2, a)(b) == add2(a, b)
		},
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}
