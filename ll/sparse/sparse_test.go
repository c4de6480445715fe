package sparse

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMatrixSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.ll")
	defer teardown()
	//
	M := NewIntMatrix(10, 10, -1)
	M.Set(2, 3, 4711)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) = 4711, is %d", v)
	}
	if v := M.Value(9, 9); v != -1 {
		t.Errorf("expected M(9,9) to be null value, is %d", v)
	}
	M.Add(2, 3, 123)
	if M.ValueCount() != 1 {
		t.Errorf("expected one position to be set, have %d", M.ValueCount())
	}
	if a, b := M.Values(2, 3); a != 4711 || b != 123 {
		t.Errorf("expected pair (4711,123), have (%d,%d)", a, b)
	}
	M.Set(2, 3, 7)
	if a, b := M.Values(2, 3); a != 7 || b != -1 {
		t.Errorf("expected Set to replace pair, have (%d,%d)", a, b)
	}
}

func TestMatrixOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.ll")
	defer teardown()
	//
	M := NewIntMatrix(5, 5, DefaultNullValue)
	M.Set(4, 0, 1).Set(0, 4, 2).Set(2, 2, 3).Set(2, 0, 4).Add(0, 0, 5)
	var order []int32
	M.Each(func(i, j int, a, b int32) {
		order = append(order, a)
	})
	expected := []int32{5, 2, 4, 3, 1}
	if len(order) != len(expected) {
		t.Fatalf("expected %d entries, have %d", len(expected), len(order))
	}
	for k := range expected {
		if order[k] != expected[k] {
			t.Errorf("expected row-major order %v, have %v", expected, order)
			break
		}
	}
	if cols := M.Row(2); len(cols) != 2 || cols[0] != 0 || cols[1] != 2 {
		t.Errorf("expected row 2 to have columns [0 2], have %v", cols)
	}
}

func TestMatrixBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fftab.ll")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected Set outside of matrix to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
