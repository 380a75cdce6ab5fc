package functional_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/authcorp/libs/go/fantasy/functional"
	"github.com/stretchr/testify/assert"
)

func TestComposeAndPipe(t *testing.T) {
	trim := strings.TrimSpace
	upper := strings.ToUpper
	exclaim := func(s string) string { return s + "!" }

	assert.Equal(t, "HI!", functional.Compose(exclaim, upper, trim)("  hi "))
	assert.Equal(t, "HI!", functional.Pipe("  hi ", trim, upper, exclaim))
	assert.Equal(t, "x", functional.Compose[string]()("x"))

	parse := functional.Compose2(func(n int) bool { return n > 10 }, func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
	assert.True(t, parse("64"))
}

func TestCurrying(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	assert.Equal(t, 1, functional.Curry2(sub)(3)(2))
	assert.Equal(t, -1, functional.Flip(sub)(3, 2))
	assert.Equal(t, 1, functional.Uncurry2(functional.Curry2(sub))(3, 2))

	join := func(a, b, c string) string { return a + b + c }
	assert.Equal(t, "abc", functional.Curry3(join)("a")("b")("c"))

	assert.Equal(t, 9, functional.Const[int, string](9)("ignored"))
	assert.Equal(t, 4, functional.Identity(4))

	var seen int
	assert.Equal(t, 5, functional.Tap(func(x int) { seen = x })(5))
	assert.Equal(t, 5, seen)
}

func TestApplicationCombinators(t *testing.T) {
	addWorld := func(w string) string { return w + " world" }
	assert.Equal(t, "hello world", functional.Thrush[string, string]("hello")(addWorld))

	add := func(x int) func(int) int { return func(y int) int { return x + y } }
	assert.Equal(t, 14, functional.Duplication(add)(7))

	multiply := func(a, b int) int { return a * b }
	calc := functional.Fork(multiply, func(x int) int { return x + x }, functional.Identity[int])
	assert.Equal(t, 8, calc(2))

	result := 0
	addToResult := func(x int) { result += x }
	functional.Seq(addToResult, addToResult)(4)
	assert.Equal(t, 8, result)

	alt := functional.Alt(functional.Identity[int], func(x int) int { return x + 1 })
	assert.Equal(t, 1, alt(0))
	assert.Equal(t, 2, alt(2))
}

func TestPartialAndUnary(t *testing.T) {
	greet := func(greeting, name string) string { return greeting + ", " + name }
	assert.Equal(t, "Hello, Oleh", functional.Partial(greet, "Hello")("Oleh"))

	clamp := func(lo, hi, x int) int { return max(lo, min(hi, x)) }
	assert.Equal(t, 10, functional.Partial3(clamp, 0, 10)(42))

	sum := func(xs ...int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	}
	assert.Equal(t, 5, functional.Unary(sum)(5))
}

func TestMemoize(t *testing.T) {
	calls := 0
	square := functional.Memoize(func(x int) int {
		calls++
		return x * x
	})

	assert.Equal(t, 9, square(3))
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 2, calls)

	var fib func(int) int
	fib = functional.Memoize(func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})
	assert.Equal(t, 12586269025, fib(50))
}

func TestOnceAndAfter(t *testing.T) {
	calls := 0
	setup := functional.Once(func() string {
		calls++
		return "ready"
	})
	assert.Equal(t, "ready", setup())
	assert.Equal(t, "", setup())
	assert.Equal(t, 1, calls)

	third := functional.After(3, func() string { return "go" })
	for i := 0; i < 2; i++ {
		value, ok := third()
		assert.False(t, ok)
		assert.Empty(t, value)
	}
	value, ok := third()
	assert.True(t, ok)
	assert.Equal(t, "go", value)
	_, ok = third()
	assert.True(t, ok)
}
