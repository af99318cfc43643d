package either

import (
	"errors"
	"strings"
	"testing"

	"github.com/theandrebass/Sum-Types/pkg/sum"
)

func TestLeftAndRight(t *testing.T) {
	t.Parallel()

	l := Left[string, int]("boom")
	if !l.IsLeft() || l.IsRight() {
		t.Fatalf("expected Left, got: %v", l)
	}
	if v, ok := l.GetLeft(); !ok || v != "boom" {
		t.Fatalf("expected boom, got: %q (%v)", v, ok)
	}
	if v, ok := l.GetRight(); ok || v != 0 {
		t.Fatalf("expected zero and false, got: %d (%v)", v, ok)
	}

	r := Right[string](42)
	if r.IsLeft() || !r.IsRight() {
		t.Fatalf("expected Right, got: %v", r)
	}
	if v, ok := r.GetRight(); !ok || v != 42 {
		t.Fatalf("expected 42, got: %d (%v)", v, ok)
	}
	if v, ok := r.GetLeft(); ok || v != "" {
		t.Fatalf("expected zero and false, got: %q (%v)", v, ok)
	}
}

func TestMatch_TakesExactlyOneBranch(t *testing.T) {
	t.Parallel()

	out := Match(Left[string, int]("boom"),
		func(msg string) string { return "err: " + msg },
		func(n int) string { return "ok" })
	if out != "err: boom" {
		t.Fatalf("expected err: boom, got: %s", out)
	}

	out = Match(Right[string](42),
		func(msg string) string { return "err: " + msg },
		func(n int) string { return "ok" })
	if out != "ok" {
		t.Fatalf("expected ok, got: %s", out)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	r := Map(Right[string](21), func(n int) int { return n * 2 })
	if v, ok := r.GetRight(); !ok || v != 42 {
		t.Fatalf("expected 42, got: %d (%v)", v, ok)
	}

	l := Map(Left[string, int]("boom"), func(n int) int { return n * 2 })
	if v, ok := l.GetLeft(); !ok || v != "boom" {
		t.Fatalf("expected Left to pass through, got: %q (%v)", v, ok)
	}
}

func TestMapLeft(t *testing.T) {
	t.Parallel()

	l := MapLeft(Left[string, int]("boom"), func(msg string) int { return len(msg) })
	if v, ok := l.GetLeft(); !ok || v != 4 {
		t.Fatalf("expected 4, got: %d (%v)", v, ok)
	}

	r := MapLeft(Right[string](42), func(msg string) int { return len(msg) })
	if v, ok := r.GetRight(); !ok || v != 42 {
		t.Fatalf("expected Right to pass through, got: %d (%v)", v, ok)
	}
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	parse := func(n int) Either[string, int] {
		if n < 0 {
			return Left[string, int]("negative")
		}
		return Right[string](n * 10)
	}

	if v, ok := FlatMap(Right[string](4), parse).GetRight(); !ok || v != 40 {
		t.Fatalf("expected 40, got: %d (%v)", v, ok)
	}
	if v, ok := FlatMap(Right[string](-4), parse).GetLeft(); !ok || v != "negative" {
		t.Fatalf("expected negative, got: %q (%v)", v, ok)
	}
	if v, ok := FlatMap(Left[string, int]("boom"), parse).GetLeft(); !ok || v != "boom" {
		t.Fatalf("expected Left to short-circuit, got: %q (%v)", v, ok)
	}
}

func TestValuedContract(t *testing.T) {
	t.Parallel()

	var _ sum.Valued = Right[string](1)

	l := Left[string, int]("boom")
	if l.Kind() != KindLeft || len(l.Values()) != 1 || l.Values()[0] != "boom" {
		t.Fatalf("expected Left/1 with boom, got: %s/%v", l.Kind(), l.Values())
	}

	r := Right[string](42)
	if r.Kind() != KindRight || len(r.Values()) != 1 || r.Values()[0] != 42 {
		t.Fatalf("expected Right/1 with 42, got: %s/%v", r.Kind(), r.Values())
	}

	if l.TypeName() != "Either" {
		t.Fatalf("expected Either, got: %s", l.TypeName())
	}
}

func TestType_CanonicalSchema(t *testing.T) {
	t.Parallel()

	typ := Type()
	if typ.Name() != "Either" {
		t.Fatalf("expected Either, got: %s", typ.Name())
	}
	for _, kind := range []sum.Kind{KindLeft, KindRight} {
		if arity, ok := typ.Arity(kind); !ok || arity != 1 {
			t.Fatalf("expected %s/1, got: %d (%v)", kind, arity, ok)
		}
	}
}

func TestFrom_RoundTrip(t *testing.T) {
	t.Parallel()

	l, err := From[string, int](Type().MustNew(KindLeft, "boom"))
	if err != nil {
		t.Fatalf("expected conversion to succeed, got: %v", err)
	}
	if v, ok := l.GetLeft(); !ok || v != "boom" {
		t.Fatalf("expected Left boom, got: %q (%v)", v, ok)
	}

	r, err := From[string, int](Type().MustNew(KindRight, 42))
	if err != nil {
		t.Fatalf("expected conversion to succeed, got: %v", err)
	}
	if v, ok := r.GetRight(); !ok || v != 42 {
		t.Fatalf("expected Right 42, got: %d (%v)", v, ok)
	}
}

func TestFrom_RejectsForeignShapes(t *testing.T) {
	t.Parallel()

	status := sum.MustDefine("Status", sum.Variant{Name: "Completed"})

	if _, err := From[string, int](status.MustNew("Completed")); !errors.Is(err, sum.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind for a foreign kind, got: %v", err)
	}

	_, err := From[string, int](Type().MustNew(KindRight, "not an int"))
	if err == nil || !strings.Contains(err.Error(), "want int") {
		t.Fatalf("expected a carried-type mismatch, got: %v", err)
	}
}
