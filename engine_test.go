package focal

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func gridOfOnes(n int) *Grid {
	g := NewGrid(n, n, "0", "0", "1")
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g.Set(row, col, 1.0)
		}
	}
	return g
}

func runFilter(t *testing.T, in *Grid, radius float64, agg Aggregate, coverage float64, workers int) *Grid {
	t.Helper()
	config := NewFilterConfig(radius, agg)
	config.CoverageMin = coverage
	engine, err := NewFilterEngine(config)
	if err != nil {
		t.Fatalf("NewFilterEngine: %v", err)
	}
	out := NewGrid(in.Nrows(), in.Ncols(), in.XLLCorner, in.YLLCorner, in.CellSize)
	if err := engine.Run(in, out, workers); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out
}

// Scenario 1: 3x3 all-ones, r=1.0, mean -> center 1.0, border nodata.
func TestScenario3x3MeanAllOnes(t *testing.T) {
	in := gridOfOnes(3)
	out := runFilter(t, in, 1.0, AggregateMean, 1.0, 2)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := Nodata
			if row == 1 && col == 1 {
				want = 1.0
			}
			if got := out.At(row, col); got != want {
				t.Errorf("out[%d][%d] = %v, want %v", row, col, got, want)
			}
		}
	}
}

// Scenario 2: 5x5, center 10, rest 0, r=1.0, sum.
func TestScenario5x5SumCentralSpike(t *testing.T) {
	in := NewGrid(5, 5, "0", "0", "1")
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			in.Set(row, col, 0)
		}
	}
	in.Set(2, 2, 10.0)
	out := runFilter(t, in, 1.0, AggregateSum, 1.0, 1)

	if got := out.At(2, 2); got != 10.0 {
		t.Errorf("center = %v, want 10", got)
	}
	neighbors := [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}}
	for _, n := range neighbors {
		if got := out.At(n[0], n[1]); got != 10.0 {
			t.Errorf("neighbor[%d][%d] = %v, want 10", n[0], n[1], got)
		}
	}
	diagonals := [][2]int{{1, 1}, {1, 3}, {3, 1}, {3, 3}}
	for _, d := range diagonals {
		if got := out.At(d[0], d[1]); got != 0.0 {
			t.Errorf("diagonal[%d][%d] = %v, want 0", d[0], d[1], got)
		}
	}
	for row := 0; row < 5; row++ {
		if got := out.At(row, 0); got != Nodata {
			t.Errorf("border out[%d][0] = %v, want Nodata", row, got)
		}
	}
}

// Scenario 3: 5x5, row 2 = [1,2,3,4,5], other rows 0; r=1.0, min.
func TestScenario5x5MinRampRow(t *testing.T) {
	in := NewGrid(5, 5, "0", "0", "1")
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			in.Set(row, col, 0)
		}
	}
	for col := 0; col < 5; col++ {
		in.Set(2, col, float64(col+1))
	}
	out := runFilter(t, in, 1.0, AggregateMin, 1.0, 3)

	for _, col := range []int{1, 2, 3} {
		if got := out.At(2, col); got != 0.0 {
			t.Errorf("out[2][%d] = %v, want 0", col, got)
		}
	}
}

// Scenario 4/5: 5x5 all ones, central cell nodata; r=1.0.
func nodataCenterGrid() *Grid {
	in := gridOfOnes(5)
	in.Set(2, 2, Nodata)
	return in
}

func TestScenario5x5NodataCenterFullCoverage(t *testing.T) {
	in := nodataCenterGrid()
	out := runFilter(t, in, 1.0, AggregateMean, 1.0, 2)

	affected := [][2]int{{2, 2}, {1, 2}, {3, 2}, {2, 1}, {2, 3}}
	for _, c := range affected {
		if got := out.At(c[0], c[1]); got != Nodata {
			t.Errorf("out[%d][%d] = %v, want Nodata", c[0], c[1], got)
		}
	}
}

func TestScenario5x5NodataCenterHalfCoverage(t *testing.T) {
	in := nodataCenterGrid()
	out := runFilter(t, in, 1.0, AggregateMean, 0.5, 2)
	if got := out.At(2, 2); got != 1.0 {
		t.Errorf("out[2][2] = %v, want 1.0", got)
	}
}

// Scenario 6: 10x10, value = row index; r=1.5, max.
func TestScenario10x10MaxRowRamp(t *testing.T) {
	in := NewGrid(10, 10, "0", "0", "1")
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			in.Set(row, col, float64(row))
		}
	}
	out := runFilter(t, in, 1.5, AggregateMax, 1.0, 4)

	config := NewFilterConfig(1.5, AggregateMax)
	engine, err := NewFilterEngine(config)
	if err != nil {
		t.Fatal(err)
	}
	guard := engine.EdgeGuard()
	for row := guard; row < 10-guard; row++ {
		for col := guard; col < 10-guard; col++ {
			want := float64(row + 1)
			if got := out.At(row, col); got != want {
				t.Errorf("out[%d][%d] = %v, want %v", row, col, got, want)
			}
		}
	}
}

// Invariant: border stays nodata (checked here with the Sum aggregate).
func TestBorderAlwaysNodata(t *testing.T) {
	in := gridOfOnes(7)
	config := NewFilterConfig(2.0, AggregateSum)
	engine, err := NewFilterEngine(config)
	if err != nil {
		t.Fatal(err)
	}
	out := NewGrid(7, 7, "0", "0", "1")
	if err := engine.Run(in, out, 2); err != nil {
		t.Fatal(err)
	}
	guard := engine.EdgeGuard()
	for row := 0; row < 7; row++ {
		for col := 0; col < 7; col++ {
			interior := row >= guard && row < 7-guard && col >= guard && col < 7-guard
			if !interior && out.At(row, col) != Nodata {
				t.Errorf("border out[%d][%d] = %v, want Nodata", row, col, out.At(row, col))
			}
		}
	}
}

// Invariant: constant-field identity for all four aggregates.
func TestConstantFieldIdentity(t *testing.T) {
	const v = 3.5
	in := NewGrid(9, 9, "0", "0", "1")
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			in.Set(row, col, v)
		}
	}
	mask, err := NewCircularMask(2.0, DefaultMaxMaskSide)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		agg  Aggregate
		want float64
	}{
		{AggregateMean, v},
		{AggregateSum, v * float64(mask.MaskSum)},
		{AggregateMin, v},
		{AggregateMax, v},
	}
	for _, c := range cases {
		out := runFilter(t, in, 2.0, c.agg, 1.0, 3)
		engine, err := NewFilterEngine(NewFilterConfig(2.0, c.agg))
		if err != nil {
			t.Fatal(err)
		}
		guard := engine.EdgeGuard()
		for row := guard; row < 9-guard; row++ {
			for col := guard; col < 9-guard; col++ {
				if got := out.At(row, col); math.Abs(got-c.want) > 1e-9 {
					t.Errorf("%v out[%d][%d] = %v, want %v", c.agg, row, col, got, c.want)
				}
			}
		}
	}
}

// Invariant: thread-count invariance (bit-identical across worker counts).
func TestThreadCountInvariance(t *testing.T) {
	in := NewGrid(15, 15, "0", "0", "1")
	for row := 0; row < 15; row++ {
		for col := 0; col < 15; col++ {
			v := float64((row*31 + col*17) % 23)
			if (row+col)%7 == 0 {
				v = Nodata
			}
			in.Set(row, col, v)
		}
	}

	aggs := []Aggregate{AggregateMean, AggregateSum, AggregateMin, AggregateMax}
	for _, agg := range aggs {
		var reference *Grid
		for _, workers := range []int{1, 2, 5} {
			out := runFilter(t, in, 2.0, agg, 0.6, workers)
			if reference == nil {
				reference = out
				continue
			}
			for row := 0; row < 15; row++ {
				for col := 0; col < 15; col++ {
					if out.At(row, col) != reference.At(row, col) {
						t.Errorf("%v: workers=%d out[%d][%d] = %v, want %v (from 1-worker run)",
							agg, workers, row, col, out.At(row, col), reference.At(row, col))
					}
				}
			}
		}
	}
}

// Invariant: sliding-window equivalence against a naive full-scan per cell.
func TestSlidingWindowEquivalenceAgainstNaiveScan(t *testing.T) {
	in := NewGrid(12, 12, "0", "0", "1")
	for row := 0; row < 12; row++ {
		for col := 0; col < 12; col++ {
			v := float64(row - col)
			if (row*col)%5 == 0 {
				v = Nodata
			}
			in.Set(row, col, v)
		}
	}

	for _, agg := range []Aggregate{AggregateMean, AggregateSum, AggregateMin, AggregateMax} {
		config := NewFilterConfig(2.0, agg)
		config.CoverageMin = 0.4
		engine, err := NewFilterEngine(config)
		if err != nil {
			t.Fatal(err)
		}
		out := runFilter(t, in, 2.0, agg, 0.4, 3)
		mask := engine.Mask()
		guard := engine.EdgeGuard()

		for row := guard; row < 12-guard; row++ {
			for col := guard; col < 12-guard; col++ {
				naiveAgg := agg.newAggregator()
				naiveAgg.Reset()
				coverage := 0
				c := mask.Center
				for i := 0; i < mask.Side; i++ {
					for j := 0; j < mask.Side; j++ {
						if !mask.Included(i, j) {
							continue
						}
						rIn, cIn := row+i-c, col+j-c
						v := in.At(rIn, cIn)
						if v == Nodata {
							continue
						}
						coverage++
						naiveAgg.Admit(v, rIn, cIn)
					}
				}
				want := Nodata
				if coverage >= engine.RequiredCount() {
					want = naiveAgg.Value(coverage)
				}
				got := out.At(row, col)
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("%v out[%d][%d] = %v, want %v (naive)", agg, row, col, got, want)
				}
			}
		}
	}
}

// Cross-check the Sum aggregate's processed-region total against an
// independent gonum/floats.Sum over the input values in the window of
// every emitted (non-nodata) cell.
func TestSumAggregateMatchesIndependentFloatsSum(t *testing.T) {
	in := NewGrid(6, 6, "0", "0", "1")
	values := make([]float64, 0, 36)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			v := float64(row + col)
			in.Set(row, col, v)
		}
	}
	out := runFilter(t, in, 1.0, AggregateSum, 1.0, 2)

	// The r=1.0 window is the plus shape: the cell and its 4 neighbors.
	window := [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	var emitted []float64
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			if v := out.At(row, col); v != Nodata {
				emitted = append(emitted, v)
				for _, d := range window {
					values = append(values, in.At(row+d[0], col+d[1]))
				}
			}
		}
	}

	want := floats.Sum(values)
	got := 0.0
	for _, v := range emitted {
		got += v
	}
	if !floats.EqualApprox([]float64{got}, []float64{want}, 1e-9) {
		t.Errorf("accumulated total %v does not match floats.Sum %v", got, want)
	}
	if len(emitted) != 4*4 {
		t.Errorf("expected a 4x4 processed region for a 6x6 grid at r=1.0, got %d cells", len(emitted))
	}
}

func TestBoundsReportsGridTooSmall(t *testing.T) {
	config := NewFilterConfig(5.0, AggregateMean)
	engine, err := NewFilterEngine(config)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, _, err := engine.Bounds(3, 3); err == nil {
		t.Error("expected ErrGridTooSmall for a 3x3 grid with radius 5")
	}
}
