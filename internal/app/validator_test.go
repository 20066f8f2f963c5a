package app

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/docship/internal/domain"
)

var testNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func TestValidator_CheckFormat(t *testing.T) {
	v := NewValidator(nil, fixedClock{now: testNow})

	tests := []struct {
		format string
		want   bool
	}{
		{"4.0", true},
		{"3.1", true},
		{"4.0 ", false},
		{" 3.1", false},
		{"4", false},
		{"3.10", false},
		{"v4.0", false},
		{"", false},
		{"invalid", false},
	}

	for _, tt := range tests {
		got := v.CheckFormat(domain.Document{Format: tt.format})
		if got != tt.want {
			t.Errorf("CheckFormat(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestValidator_CheckFormat_CustomWhitelist(t *testing.T) {
	v := NewValidator([]string{"5.0"}, fixedClock{now: testNow})

	if !v.CheckFormat(domain.Document{Format: "5.0"}) {
		t.Error("CheckFormat(5.0) = false with custom whitelist")
	}
	if v.CheckFormat(domain.Document{Format: "4.0"}) {
		t.Error("CheckFormat(4.0) = true, default whitelist should be replaced")
	}
}

func TestValidator_CheckActual(t *testing.T) {
	v := NewValidator(nil, fixedClock{now: testNow})
	monthAgo := testNow.AddDate(0, -1, 0)

	tests := []struct {
		name    string
		created time.Time
		want    bool
	}{
		{"created now", testNow, true},
		{"created yesterday", testNow.AddDate(0, 0, -1), true},
		{"created in the future", testNow.Add(time.Hour), true},
		{"one nanosecond inside the window", monthAgo.Add(time.Nanosecond), true},
		{"exactly one month ago", monthAgo, false},
		{"one nanosecond outside the window", monthAgo.Add(-time.Nanosecond), false},
		{"two months ago", testNow.AddDate(0, -2, 0), false},
		{"zero time", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.CheckActual(domain.Document{Created: tt.created})
			if got != tt.want {
				t.Errorf("CheckActual(created=%s) = %v, want %v", tt.created, got, tt.want)
			}
		})
	}
}

// Month addition follows time.AddDate normalization: Jan 31 + 1 month is
// Mar 3 in a common year and Mar 2 in a leap year.
func TestValidator_CheckActual_MonthLengthBoundary(t *testing.T) {
	tests := []struct {
		name    string
		created time.Time
		now     time.Time
		want    bool
	}{
		{
			name:    "end of february is still inside the window",
			created: time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
			now:     time.Date(2026, 2, 28, 23, 59, 0, 0, time.UTC),
			want:    true,
		},
		{
			name:    "just before the normalized boundary",
			created: time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
			now:     time.Date(2026, 3, 3, 9, 59, 59, 0, time.UTC),
			want:    true,
		},
		{
			name:    "at the normalized boundary",
			created: time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC),
			now:     time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "leap year boundary",
			created: time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			now:     time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
			want:    false,
		},
		{
			name:    "leap year just before boundary",
			created: time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC),
			now:     time.Date(2024, 3, 2, 9, 59, 59, 0, time.UTC),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(nil, fixedClock{now: tt.now})
			got := v.CheckActual(domain.Document{Created: tt.created})
			if got != tt.want {
				t.Errorf("CheckActual(created=%s, now=%s) = %v, want %v", tt.created, tt.now, got, tt.want)
			}
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(nil, fixedClock{now: testNow})
	stale := testNow.AddDate(0, -3, 0)

	tests := []struct {
		name    string
		doc     domain.Document
		wantErr error
	}{
		{"valid", domain.Document{Format: "4.0", Created: testNow}, nil},
		{"bad format", domain.Document{Format: "2.0", Created: testNow}, domain.ErrFormatRejected},
		{"stale", domain.Document{Format: "3.1", Created: stale}, domain.ErrStaleDocument},
		{"format checked first", domain.Document{Format: "2.0", Created: stale}, domain.ErrFormatRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
