package services

import (
	"testing"
	"time"

	"lawyerhub/models"
)

func TestProfileCompletion(t *testing.T) {
	empty := &models.User{}
	if got := profileCompletion(empty); got != 0 {
		t.Errorf("Expected 0 completion for an empty profile, got %v", got)
	}

	full := &models.User{
		Name:         "Ada Example",
		Specialty:    []string{"Corporate Law"},
		Location:     models.Location{City: "Austin"},
		Bio:          "Twenty years of corporate practice",
		Education:    []string{"UT Law"},
		Experience:   []string{"Partner, Example LLP"},
		LicenseInfo:  "TX-12345",
		ProfileImage: "https://example.com/ada.png",
		ContactInfo:  "ada@example.com",
	}
	if got := profileCompletion(full); got != 1.0 {
		t.Errorf("Expected 1.0 completion for a full profile, got %v", got)
	}

	// Five of nine fields populated
	partial := &models.User{
		Name:        "Ada Example",
		Specialty:   []string{"Corporate Law"},
		Location:    models.Location{City: "Austin"},
		Bio:         "Corporate practice",
		LicenseInfo: "TX-12345",
	}
	want := 5.0 / 9.0
	if got := profileCompletion(partial); got != want {
		t.Errorf("Expected %v completion for a partial profile, got %v", want, got)
	}
}

func TestDaysActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := daysActive(now.AddDate(-1, 0, 0), now); got != 365 {
		t.Errorf("Expected 365 days active after one year, got %d", got)
	}
	if got := daysActive(time.Time{}, now); got != 0 {
		t.Errorf("Expected 0 days active for a zero creation time, got %d", got)
	}
	if got := daysActive(now.Add(time.Hour), now); got != 0 {
		t.Errorf("Expected 0 days active for a future creation time, got %d", got)
	}
}

func TestRecencyFactor(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		lastActivity time.Time
		want         float64
	}{
		{now.Add(-24 * time.Hour), 1.2},
		{now.Add(-20 * 24 * time.Hour), 1.0},
		{now.Add(-60 * 24 * time.Hour), 0.8},
		{now.Add(-200 * 24 * time.Hour), 0.5},
		{time.Time{}, 0.5},
	}

	for _, tc := range cases {
		if got := recencyFactor(tc.lastActivity, now); got != tc.want {
			t.Errorf("recencyFactor(%v) = %v, want %v", tc.lastActivity, got, tc.want)
		}
	}
}
