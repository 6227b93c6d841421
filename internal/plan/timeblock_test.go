package plan

import "testing"

func TestTimeBlockOfPartitionsEveryHour(t *testing.T) {
	want := map[int]TimeBlock{
		0: Dawn, 1: Dawn, 2: Dawn,
		3: DeepNight, 4: DeepNight, 5: DeepNight,
		6: Morning, 11: Morning,
		12: Afternoon, 17: Afternoon,
		18: Evening, 20: Evening,
		21: Night, 23: Night,
	}
	for hour, block := range want {
		if got := TimeBlockOf(hour); got != block {
			t.Fatalf("TimeBlockOf(%d) = %v, want %v", hour, got, block)
		}
	}
}

func TestTimeBlockOfWrapsOutOfRangeHours(t *testing.T) {
	if got := TimeBlockOf(24); got != Dawn {
		t.Fatalf("hour 24 should wrap to dawn, got %v", got)
	}
	if got := TimeBlockOf(-1); got != Night {
		t.Fatalf("hour -1 should wrap to 23 (night), got %v", got)
	}
	if got := TimeBlockOf(30); got != Morning {
		t.Fatalf("hour 30 should wrap to 6 (morning), got %v", got)
	}
}

func TestParseTimeBlockRoundTrip(t *testing.T) {
	blocks := []TimeBlock{Morning, Afternoon, Evening, Night, Dawn, DeepNight}
	for _, b := range blocks {
		if got := ParseTimeBlock(b.String()); got != b {
			t.Fatalf("ParseTimeBlock(%q) = %v, want %v", b.String(), got, b)
		}
	}
	if got := ParseTimeBlock("midday"); got != TimeBlockUnknown {
		t.Fatalf("unknown label should parse to TimeBlockUnknown, got %v", got)
	}
}

func TestIsFeedingWindow(t *testing.T) {
	for _, hour := range []int{7, 8, 9, 17, 18, 19} {
		if !IsFeedingWindow(hour) {
			t.Fatalf("hour %d should be a feeding window", hour)
		}
	}
	for _, hour := range []int{6, 10, 16, 20, 0, 23} {
		if IsFeedingWindow(hour) {
			t.Fatalf("hour %d should not be a feeding window", hour)
		}
	}
}
