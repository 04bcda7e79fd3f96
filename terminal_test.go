package seqz

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"
)

func TestTerminals(t *testing.T) {
	t.Run("Collect", func(t *testing.T) {
		got := Of(1, 2, 3).Collect()
		want := []int{1, 2, 3}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Collect Empty", func(t *testing.T) {
		if got := Of[string]().Collect(); len(got) != 0 {
			t.Errorf("expected no elements, got %v", got)
		}
	})

	t.Run("Consume Discards But Drives", func(t *testing.T) {
		calls := 0
		Of(1, 2, 3).
			ForEach(func(int, int) { calls++ }).
			Consume()

		if calls != 3 {
			t.Errorf("expected 3 side effects, got %d", calls)
		}
	})

	t.Run("Count", func(t *testing.T) {
		if got := Of("a", "b", "c").Count(); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
		if got := Of[string]().Count(); got != 0 {
			t.Errorf("expected 0, got %d", got)
		}
	})

	t.Run("First", func(t *testing.T) {
		v, ok := Of(7, 8, 9).First()
		if !ok || v != 7 {
			t.Errorf("expected (7, true), got (%d, %t)", v, ok)
		}

		_, ok = Of[int]().First()
		if ok {
			t.Error("expected no value from an empty sequence")
		}
	})

	t.Run("First Pulls Exactly One Element", func(t *testing.T) {
		pulls := 0
		src := Func[int](func() (int, bool) {
			pulls++
			return pulls, true
		})

		New(src).First()
		if pulls != 1 {
			t.Errorf("expected 1 upstream pull, got %d", pulls)
		}
	})

	t.Run("Last", func(t *testing.T) {
		v, ok := Of(7, 8, 9).Last()
		if !ok || v != 9 {
			t.Errorf("expected (9, true), got (%d, %t)", v, ok)
		}

		_, ok = Of[int]().Last()
		if ok {
			t.Error("expected no value from an empty sequence")
		}
	})

	t.Run("Find Short Circuits", func(t *testing.T) {
		pulls := 0
		src := Func[int](func() (int, bool) {
			pulls++
			return pulls, true
		})

		v, ok := New(src).Find(func(n, _ int) bool { return n == 4 })
		if !ok || v != 4 {
			t.Errorf("expected (4, true), got (%d, %t)", v, ok)
		}
		if pulls != 4 {
			t.Errorf("expected 4 upstream pulls, got %d", pulls)
		}
	})

	t.Run("Find Without Match", func(t *testing.T) {
		_, ok := Of(1, 2, 3).Find(func(n, _ int) bool { return n > 10 })
		if ok {
			t.Error("expected no match")
		}
	})

	t.Run("Some And Every", func(t *testing.T) {
		even := func(n, _ int) bool { return n%2 == 0 }

		if !Of(1, 2, 3).Some(even) {
			t.Error("expected Some to find an even element")
		}
		if Of(1, 3, 5).Some(even) {
			t.Error("expected Some to find nothing")
		}
		if !Of(2, 4, 6).Every(even) {
			t.Error("expected Every to hold")
		}
		if Of(2, 3, 4).Every(even) {
			t.Error("expected Every to fail")
		}
	})

	t.Run("Every Short Circuits On Counterexample", func(t *testing.T) {
		pulls := 0
		src := Func[int](func() (int, bool) {
			pulls++
			return pulls, true
		})

		if New(src).Every(func(n, _ int) bool { return n < 3 }) {
			t.Error("expected Every to fail over the naturals")
		}
		if pulls != 3 {
			t.Errorf("expected 3 upstream pulls, got %d", pulls)
		}
	})

	t.Run("Includes", func(t *testing.T) {
		if !Includes(Of("a", "b", "c"), "b") {
			t.Error("expected Includes to find b")
		}
		if Includes(Of("a", "b", "c"), "z") {
			t.Error("expected Includes to miss z")
		}
	})

	t.Run("Reduce", func(t *testing.T) {
		got := Reduce(Of(1, 2, 3), 0, func(acc, n, _ int) int { return acc + n })
		if got != 6 {
			t.Errorf("expected 6, got %d", got)
		}
	})

	t.Run("Reduce Receives Positions", func(t *testing.T) {
		got := Reduce(Of("a", "b"), "", func(acc, s string, i int) string {
			return fmt.Sprintf("%s%s%d", acc, s, i)
		})
		if got != "a0b1" {
			t.Errorf("expected a0b1, got %s", got)
		}
	})
}

// code has a non-empty textual form; blank's form is empty and Join must
// skip it.
type code int

func (c code) String() string { return fmt.Sprintf("c%d", int(c)) }

type blank struct{}

func (blank) String() string { return "" }

func TestJoin(t *testing.T) {
	t.Run("Empty Forms Are Skipped", func(t *testing.T) {
		got := Of[any](1, "", 0, "a").Join(";")
		if got != "1;0;a" {
			t.Errorf("expected %q, got %q", "1;0;a", got)
		}
	})

	t.Run("Separator Only Between Kept Forms", func(t *testing.T) {
		got := Of[any]("", "a", "", "b", "").Join(";")
		if got != "a;b" {
			t.Errorf("expected %q, got %q", "a;b", got)
		}
	})

	t.Run("Stringer Forms", func(t *testing.T) {
		got := Of[any](code(1), blank{}, code(2)).Join("-")
		if got != "c1-c2" {
			t.Errorf("expected %q, got %q", "c1-c2", got)
		}
	})

	t.Run("Nil Has No Form", func(t *testing.T) {
		got := Of[any](nil, "x", nil).Join(",")
		if got != "x" {
			t.Errorf("expected %q, got %q", "x", got)
		}
	})

	t.Run("Typed Elements", func(t *testing.T) {
		got := Of(1, 2, 3).Join("+")
		if got != "1+2+3" {
			t.Errorf("expected %q, got %q", "1+2+3", got)
		}
	})
}

func TestCallbackFailure(t *testing.T) {
	t.Run("Panic Surfaces At The Terminal Call", func(t *testing.T) {
		var consumed []int
		chain := Map(Of(1, 2, 3), func(n, _ int) int {
			if n == 3 {
				panic("broken transform")
			}
			return n
		}).ForEach(func(n, _ int) { consumed = append(consumed, n) })

		defer func() {
			r := recover()
			if r != "broken transform" {
				t.Errorf("expected the callback panic unmodified, got %v", r)
			}
			// Elements pulled before the failing one were unaffected.
			if !slices.Equal(consumed, []int{1, 2}) {
				t.Errorf("expected [1 2] consumed before the panic, got %v", consumed)
			}
		}()

		chain.Collect()
		t.Error("expected Collect to panic")
	})
}

func TestDriveObservability(t *testing.T) {
	t.Run("Metrics Record Drives And Pulls", func(t *testing.T) {
		s := Of(1, 2, 3)
		s.Collect()

		if got := s.Metrics().Counter(DrivesTotal).Value(); got != 1 {
			t.Errorf("expected 1 drive, got %v", got)
		}
		if got := s.Metrics().Counter(ElementsPulledTotal).Value(); got != 3 {
			t.Errorf("expected 3 pulled elements, got %v", got)
		}
	})

	t.Run("Short Circuit Pulls Are Counted", func(t *testing.T) {
		s := Of(1, 2, 3, 4, 5)
		s.Find(func(n, _ int) bool { return n == 2 })

		if got := s.Metrics().Counter(ElementsPulledTotal).Value(); got != 2 {
			t.Errorf("expected 2 pulled elements, got %v", got)
		}
	})

	t.Run("Drive Complete Event", func(t *testing.T) {
		s := Of(1, 2, 3)
		defer s.Close()

		var mu sync.Mutex
		var events []DriveEvent
		if err := s.OnDriveComplete(func(_ context.Context, e DriveEvent) error {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
			return nil
		}); err != nil {
			t.Fatalf("unexpected error registering hook: %v", err)
		}

		s.Take(2).Collect()

		// Wait for async hooks to fire
		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		if len(events) != 1 {
			t.Fatalf("expected 1 drive event, got %d", len(events))
		}
		if events[0].Op != "collect" {
			t.Errorf("expected op collect, got %s", events[0].Op)
		}
		if events[0].Elements != 2 {
			t.Errorf("expected 2 elements, got %d", events[0].Elements)
		}
	})
}
