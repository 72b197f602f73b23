package lulc

import "testing"

func TestAreaKm2(t *testing.T) {
	cases := []struct {
		count int
		pixel float64
		want  float64
	}{
		{100, 30, 0.09},
		{50, 30, 0.045},
		{0, 30, 0},
		{1, 30, 0.0009},
		{7, 33, 0.0076},
		{2, 25, 0.0013}, // 0.00125 rounds half away from zero
	}
	for _, c := range cases {
		if got := AreaKm2(c.count, c.pixel); got != c.want {
			t.Fatalf("AreaKm2(%d, %g) = %v, want %v", c.count, c.pixel, got, c.want)
		}
	}
}

func TestTallyClasses(t *testing.T) {
	grid := &ClassGrid{Data: make([]int32, 150), Width: 15, Height: 10}
	for i := 0; i < 100; i++ {
		grid.Data[i] = 1
	}
	for i := 100; i < 150; i++ {
		grid.Data[i] = 2
	}
	stats := TallyClasses(grid, []int32{1, 2}, 30)
	if len(stats) != 2 {
		t.Fatalf("want 2 stats, got %d", len(stats))
	}
	if stats[0].PixelCount != 100 || stats[0].AreaKm2 != 0.09 {
		t.Fatalf("class 1 tally wrong: %+v", stats[0])
	}
	if stats[1].PixelCount != 50 || stats[1].AreaKm2 != 0.045 {
		t.Fatalf("class 2 tally wrong: %+v", stats[1])
	}
}

func TestTallyKeepsRequestedOrder(t *testing.T) {
	grid := &ClassGrid{Data: []int32{3, 1, 1, 2}, Width: 4, Height: 1}
	stats := TallyClasses(grid, []int32{3, 1, 2}, 10)
	for i, want := range []int32{3, 1, 2} {
		if stats[i].Class != want {
			t.Fatalf("stat %d has class %d, want %d", i, stats[i].Class, want)
		}
	}
}

func TestTallyAbsentClass(t *testing.T) {
	grid := &ClassGrid{Data: []int32{1, 1, 1, 1}, Width: 2, Height: 2}
	stats := TallyClasses(grid, []int32{1, 9}, 30)
	if stats[1].PixelCount != 0 || stats[1].AreaKm2 != 0 {
		t.Fatalf("absent class should tally zero: %+v", stats[1])
	}
}

func TestTallyDuplicateClass(t *testing.T) {
	grid := &ClassGrid{Data: []int32{5, 5, 0, 5}, Width: 2, Height: 2}
	stats := TallyClasses(grid, []int32{5, 5}, 30)
	if stats[0] != stats[1] {
		t.Fatalf("duplicate classes should produce identical rows: %+v vs %+v", stats[0], stats[1])
	}
	if stats[0].PixelCount != 3 {
		t.Fatalf("want 3 cells of class 5, got %d", stats[0].PixelCount)
	}
}

func TestDiscoverClasses(t *testing.T) {
	grid := &ClassGrid{
		Data:      []int32{0, 7, 3, 1, 3, 7, 0, 1, 1},
		Width:     3,
		Height:    3,
		NoData:    7,
		HasNoData: true,
	}
	classes := DiscoverClasses(grid)
	if len(classes) != 2 || classes[0] != 1 || classes[1] != 3 {
		t.Fatalf("want [1 3], got %v", classes)
	}
}

func TestDiscoverClassesAllBackground(t *testing.T) {
	grid := &ClassGrid{
		Data:      []int32{0, 0, 7, 7},
		Width:     2,
		Height:    2,
		NoData:    7,
		HasNoData: true,
	}
	if classes := DiscoverClasses(grid); len(classes) != 0 {
		t.Fatalf("background-only grid should discover no classes, got %v", classes)
	}
}

func TestTallyNodataClassAllowed(t *testing.T) {
	// An explicit class list is authoritative, even for the nodata value.
	grid := &ClassGrid{
		Data:      []int32{0, 0, 1, 0},
		Width:     2,
		Height:    2,
		NoData:    0,
		HasNoData: true,
	}
	stats := TallyClasses(grid, []int32{0}, 30)
	if stats[0].PixelCount != 3 {
		t.Fatalf("want 3 nodata cells tallied, got %d", stats[0].PixelCount)
	}
}

func TestTallyNeverExceedsValidCells(t *testing.T) {
	grid := &ClassGrid{
		Data:      []int32{0, 1, 2, 2, 4, 4, 4, 0, 9},
		Width:     3,
		Height:    3,
		NoData:    0,
		HasNoData: true,
	}
	stats := TallyClasses(grid, DiscoverClasses(grid), 30)
	total := 0
	for _, s := range stats {
		total += s.PixelCount
	}
	if valid := grid.ValidCells(); total > valid {
		t.Fatalf("tallied %d cells out of %d valid", total, valid)
	}
}
