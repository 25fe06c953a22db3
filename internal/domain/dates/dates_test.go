package dates

import "testing"

func TestCompare(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "earlier date sorts first", a: "2025-01-05", b: "2025-01-10", expected: -1},
		{name: "equal dates", a: "2025-03-01", b: "2025-03-01", expected: 0},
		{name: "later date sorts last", a: "2025-12-31", b: "2025-02-01", expected: 1},
		{name: "year boundary", a: "2024-12-31", b: "2025-01-01", expected: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.expected {
				t.Errorf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		date     string
		n        int
		expected string
	}{
		{name: "forward within month", date: "2025-01-05", n: 3, expected: "2025-01-08"},
		{name: "backward within month", date: "2025-01-05", n: -4, expected: "2025-01-01"},
		{name: "across month boundary", date: "2025-01-31", n: 1, expected: "2025-02-01"},
		{name: "across year boundary backward", date: "2025-01-01", n: -1, expected: "2024-12-31"},
		{name: "leap day", date: "2024-02-28", n: 1, expected: "2024-02-29"},
		{name: "zero days", date: "2025-06-15", n: 0, expected: "2025-06-15"},
		{name: "malformed input passes through", date: "not-a-date", n: 5, expected: "not-a-date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddDays(tc.date, tc.n); got != tc.expected {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tc.date, tc.n, got, tc.expected)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "consecutive days", a: "2025-01-01", b: "2025-01-02", expected: 1},
		{name: "same day", a: "2025-01-01", b: "2025-01-01", expected: 0},
		{name: "reversed range is negative", a: "2025-01-10", b: "2025-01-01", expected: -9},
		{name: "phase example span", a: "2025-01-01", b: "2025-01-10", expected: 9},
		{name: "malformed start", a: "garbage", b: "2025-01-10", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.a, tc.b); got != tc.expected {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDaysBetweenInclusive(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "single day counts as one", a: "2025-01-01", b: "2025-01-01", expected: 1},
		{name: "ten day range", a: "2025-01-01", b: "2025-01-10", expected: 10},
		{name: "reversed range is zero", a: "2025-01-10", b: "2025-01-01", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetweenInclusive(tc.a, tc.b); got != tc.expected {
				t.Errorf(
					"DaysBetweenInclusive(%q, %q) = %d, want %d",
					tc.a,
					tc.b,
					got,
					tc.expected,
				)
			}
		})
	}
}
