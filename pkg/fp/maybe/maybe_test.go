package maybe

import (
	"testing"

	"github.com/ib-77/monads/pkg/fp"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestUnknown_NeverEqual(t *testing.T) {
	t.Parallel()

	u := Unknown[int]()
	if u.Equal(u) {
		t.Fatalf("unknown must not equal itself")
	}
	if Unknown[int]().Equal(Unknown[int]()) {
		t.Fatalf("two unknowns must not be equal")
	}
	if Definitely(42).Equal(Unknown[int]()) || Unknown[int]().Equal(Definitely(42)) {
		t.Fatalf("known and unknown must not be equal")
	}
}

func TestDefinitely_Equal(t *testing.T) {
	t.Parallel()

	k := Definitely(42)
	if !k.Equal(k) {
		t.Fatalf("known must equal itself")
	}
	if !Definitely(42).Equal(Definitely(42)) {
		t.Fatalf("known values holding 42 must be equal")
	}
	if Definitely(42).Equal(Definitely(43)) {
		t.Fatalf("different known values must not be equal")
	}
}

func TestDefinitely_NilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatalf("expected an error panic")
		}
		assert.ErrorIs(t, err, fp.ErrNullValue)
	}()

	Definitely[map[string]int](nil)
}

func TestOf(t *testing.T) {
	t.Parallel()

	var ptr *int
	assert.False(t, Of(ptr).IsKnown())
	assert.True(t, Of(0).IsKnown())
	assert.True(t, Of("").IsKnown())
}

func TestOr_LiteralAndSupplier(t *testing.T) {
	t.Parallel()

	calls := 0
	supply := func() int { calls++; return 42 }

	assert.Equal(t, 7, Definitely(7).Or(Literal(42)))
	assert.Equal(t, 7, Definitely(7).Or(Supplier(supply)))
	assert.Equal(t, 0, calls, "supplier must not run for a known value")

	assert.Equal(t, 42, Unknown[int]().Or(Literal(42)))
	assert.Equal(t, 42, Unknown[int]().Or(Supplier(supply)))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 42, Unknown[int]().OrValue(42))
	assert.Equal(t, 42, Unknown[int]().OrGet(supply))
	assert.Equal(t, 7, Definitely(7).OrValue(42))
	assert.Equal(t, 7, Definitely(7).OrGet(supply))
}

func TestOr_LiteralFunc(t *testing.T) {
	t.Parallel()

	fn := func() string { return "called" }
	got := Unknown[func() string]().Or(Literal(fn))
	assert.Equal(t, "called", got())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	k := Definitely(1)
	assert.Same(t, k, k.OrElse(Definitely(2)))

	other := Definitely(2)
	assert.Same(t, other, Unknown[int]().OrElse(other))
}

func TestTo(t *testing.T) {
	t.Parallel()

	assert.True(t, To(Definitely(20), func(v int) int { return v + 22 }).Equal(Definitely(42)))

	called := false
	out := To(Unknown[int](), func(v int) string { called = true; return "" })
	assert.False(t, out.IsKnown())
	assert.False(t, called)
}

func TestQuery(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }
	assert.True(t, Definitely(4).Query(even).Equal(Definitely(true)))
	assert.True(t, Definitely(3).Query(even).Equal(Definitely(false)))
	assert.False(t, Unknown[int]().Query(even).IsKnown())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Maybe[42]", Definitely(42).String())
	assert.Equal(t, "Maybe.unknown", Unknown[int]().String())
}

func TestEqualityLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		b := rapid.Int().Draw(t, "b")

		if Definitely(a).Equal(Definitely(b)) != (a == b) {
			t.Fatalf("known equality must follow value equality for %d, %d", a, b)
		}
		if Of(&a).Equal(Unknown[*int]()) {
			t.Fatalf("known must never equal unknown")
		}
	})
}

func TestOrKnownIgnoresFallback(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.String().Draw(t, "v")
		other := rapid.String().Draw(t, "other")

		if got := Definitely(v).Or(Literal(other)); got != v {
			t.Fatalf("expected %q, got %q", v, got)
		}
		if got := Unknown[string]().Or(Literal(other)); got != other {
			t.Fatalf("expected fallback %q, got %q", other, got)
		}
	})
}
