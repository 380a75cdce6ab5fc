package container_test

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/authcorp/libs/go/fantasy/container"
	"github.com/authcorp/libs/go/fantasy/functional"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestKindCapabilities(t *testing.T) {
	assert.ElementsMatch(t,
		[]container.Capability{"map", "toString", "inspect", "tap", "fold", "get"},
		container.KindFunctor.Capabilities())
	assert.Equal(t, container.KindApply.Capabilities(), container.KindApplicative.Capabilities())
	assert.ElementsMatch(t,
		[]container.Capability{"lazyMap", "lazyFold"},
		container.KindLazyFunctor.Capabilities())

	assert.False(t, container.KindFunctor.Has(container.CapAp))
	assert.True(t, container.KindApply.Has(container.CapApGet))
	assert.False(t, container.KindApply.Has(container.CapChain))
	assert.True(t, container.KindMonad.Has(container.CapJoin))
	assert.True(t, container.KindMonad.Has(container.CapApChain))
	assert.False(t, container.KindLazyFunctor.Has(container.CapGet))

	caps := container.KindMonad.Capabilities()
	caps[0] = "mutated"
	assert.True(t, container.KindMonad.Has(container.CapMap), "callers get a copy")

	assert.Equal(t, "LazyFunctor", container.KindLazyFunctor.String())
	assert.Equal(t, container.KindApplicative, container.ApplicativeOf(1).Kind())
}

func TestFunctor(t *testing.T) {
	trimmed := container.NewFunctor("  64  ").Map(strings.TrimSpace)
	code := container.MapFunctor(trimmed, func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})
	letter := container.Fold(container.MapFunctor(code, func(n int) rune { return rune(n + 1) }),
		func(r rune) string { return string(r) })

	assert.Equal(t, "A", letter)
	assert.Equal(t, "Functor(64)", trimmed.String())
	assert.Equal(t, "Functor(64)", code.Inspect())
}

func TestTap(t *testing.T) {
	var seen []int
	original := container.NewMonad(3)

	tapped := original.Tap(func(x int) { seen = append(seen, x) }).Map(func(x int) int { return x + 1 })

	assert.Equal(t, []int{3}, seen)
	assert.Equal(t, 4, tapped.Get())
	assert.Equal(t, 3, original.Get())
	assert.Equal(t, 3, container.NewFunctor(3).Tap(func(int) {}).Get())
}

func TestApply(t *testing.T) {
	add := func(x int) func(int) int {
		return func(y int) int { return x + y }
	}

	t.Run("apply", func(t *testing.T) {
		partial := container.ApplyAp(container.NewApply(add), 2)
		assert.Equal(t, 5, container.ApplyApGet(partial, 3))
		assert.Equal(t, "Apply(5)", container.ApplyAp(partial, 3).String())
	})

	t.Run("applicative", func(t *testing.T) {
		partial := container.ApplicativeAp(container.NewApplicative(add), 2)
		assert.Equal(t, 5, container.ApplicativeApGet(partial, 3))
		assert.Equal(t, "Applicative(5)", container.ApplicativeAp(partial, 3).Inspect())
	})

	t.Run("monad", func(t *testing.T) {
		sum := container.MonadAp(container.MonadAp(container.MonadOf(add), 2), 3)
		assert.Equal(t, 5, sum.Get())
		assert.Equal(t, "Monad(5)", sum.String())
		assert.Equal(t, 5, container.MonadApGet(container.MonadAp(container.MonadOf(add), 2), 3))
	})

	t.Run("apChain reads the joined value", func(t *testing.T) {
		double := container.MonadOf(func(x int) int { return x * 2 })
		assert.Equal(t, 42, container.MonadApChain(double, container.NewMonad(21)).Get())
	})

	t.Run("map changes type", func(t *testing.T) {
		assert.Equal(t, "3", container.MapApply(container.NewApply(3), strconv.Itoa).Get())
		assert.Equal(t, "3", container.MapApplicative(container.ApplicativeOf(3), strconv.Itoa).Get())
		assert.Equal(t, 6, container.NewApply(3).Map(func(x int) int { return x * 2 }).Get())
	})
}

func TestMonadChainAndJoin(t *testing.T) {
	nested := container.NewMonad(container.NewMonad(7))
	assert.Equal(t, 7, nested.Join().Join())

	parsed := container.ChainMonad(container.MonadOf("12"), func(s string) container.Monad[int] {
		n, _ := strconv.Atoi(s)
		return container.MonadOf(n)
	})
	assert.Equal(t, 12, parsed.Get())

	length := container.MapMonad(container.MonadOf("abc"), func(s string) int { return len(s) })
	assert.Equal(t, 3, length.Get())
	assert.Equal(t, 9, length.Chain(func(x int) container.Monad[int] { return container.MonadOf(x * x) }).Get())
}

func TestLazyFunctor(t *testing.T) {
	var produced, squared int32
	lazy := container.NewLazy(func() int {
		atomic.AddInt32(&produced, 1)
		return 7
	}).LazyMap(func(x int) int {
		atomic.AddInt32(&squared, 1)
		return x * x
	}).LazyMap(func(x int) int { return x * 10 })

	assert.Zero(t, atomic.LoadInt32(&produced), "nothing runs before the fold")
	assert.Zero(t, atomic.LoadInt32(&squared))

	assert.Equal(t, 490, lazy.LazyFold(functional.Identity[int]))
	assert.EqualValues(t, 1, produced)
	assert.EqualValues(t, 1, squared)

	lazy.LazyFold(functional.Identity[int])
	assert.EqualValues(t, 2, squared, "every fold re-runs the chain")

	label := container.LazyFold(container.LazyMap(lazy, strconv.Itoa), func(s string) string { return "n=" + s })
	assert.Equal(t, "n=490", label)
}

func TestLazyOrder(t *testing.T) {
	var order []string
	step := func(name string) func(string) string {
		return func(s string) string {
			order = append(order, name)
			return s + name
		}
	}

	lazy := container.NewLazy(func() string { return "" }).LazyMap(step("a")).LazyMap(step("b")).LazyMap(step("c"))
	assert.Empty(t, order)
	assert.Equal(t, "abc", lazy.LazyFold(functional.Identity[string]))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestZeroLazy(t *testing.T) {
	var lazy container.Lazy[int]
	assert.Equal(t, 0, lazy.LazyFold(functional.Identity[int]))
	assert.Equal(t, 1, lazy.LazyMap(func(x int) int { return x + 1 }).LazyFold(functional.Identity[int]))
	assert.Equal(t, "0", container.LazyFold(lazy, strconv.Itoa))
	assert.Equal(t, 0, lazy.Memoize().LazyFold(functional.Identity[int]))
}

func TestLazyMemoize(t *testing.T) {
	var calls int32
	memo := container.NewLazy(func() int {
		atomic.AddInt32(&calls, 1)
		return 3
	}).Memoize()

	assert.Zero(t, atomic.LoadInt32(&calls))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memo.LazyFold(functional.Identity[int])
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	assert.Equal(t, 6, memo.LazyMap(func(x int) int { return x * 2 }).LazyFold(functional.Identity[int]))
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

// TestFunctorLaws verifies identity and composition for every eager variant.
func TestFunctorLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int().Draw(t, "value")
		k := rapid.IntRange(-50, 50).Draw(t, "k")

		f := func(x int) int { return x + k }
		g := func(x int) int { return x * 2 }
		fg := functional.Compose(g, f)

		if container.NewFunctor(value).Map(functional.Identity[int]).Get() != value {
			t.Fatal("functor identity violated")
		}
		if container.NewFunctor(value).Map(f).Map(g).Get() != container.NewFunctor(value).Map(fg).Get() {
			t.Fatal("functor composition violated")
		}
		if container.NewApply(value).Map(f).Map(g).Get() != container.NewApply(value).Map(fg).Get() {
			t.Fatal("apply composition violated")
		}
		if container.MonadOf(value).Map(f).Map(g).Get() != container.MonadOf(value).Map(fg).Get() {
			t.Fatal("monad composition violated")
		}
	})
}

// TestMonadIdentityLaws verifies left and right identity for Chain.
func TestMonadIdentityLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.Int().Draw(t, "value")
		f := func(x int) container.Monad[int] { return container.MonadOf(x - 1) }

		if container.MonadOf(value).Chain(f) != f(value) {
			t.Fatal("left identity violated")
		}

		m := container.MonadOf(value)
		if m.Chain(container.MonadOf[int]) != m {
			t.Fatal("right identity violated")
		}
	})
}
