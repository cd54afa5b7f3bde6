package stamp

import (
	"testing"
	"time"
)

func TestLayoutDateTime(t *testing.T) {
	tests := []struct {
		year  int
		safe  string
		human string
	}{
		{1970, "o81123-0456-0789", "o8~11/23 04:56:07"},
		{2000, "r81123-0456-0789", "r8~11/23 04:56:07"},
		{2010, "s81123-0456-0789", "s8~11/23 04:56:07"},
		{2021, "t91123-0456-0789", "t9~11/23 04:56:07"},
		{2022, "A01123-0456-0789", "A0~11/23 04:56:07"},
		{2033, "B11123-0456-0789", "B1~11/23 04:56:07"},
		{2221, "T91123-0456-0789", "T9~11/23 04:56:07"},
		{2222, "A01123-0456-0789", "A0~11/23 04:56:07"},
	}
	human := DateTime
	human.Human = true
	for _, tt := range tests {
		ts := time.Date(tt.year, time.November, 23, 4, 56, 7, 890*int(time.Millisecond), time.UTC)
		if got := DateTime.Format(ts); got != tt.safe {
			t.Errorf("%d: DateTime.Format() = %q, want %q", tt.year, got, tt.safe)
		}
		if got := human.Format(ts); got != tt.human {
			t.Errorf("%d: human DateTime.Format() = %q, want %q", tt.year, got, tt.human)
		}
	}
}

func TestLayoutParts(t *testing.T) {
	ts := time.Date(2025, time.January, 8, 23, 4, 5, 670*int(time.Millisecond), time.UTC)
	tests := []struct {
		name   string
		layout Layout
		want   string
	}{
		{"date", DateOnly, "A30108"},
		{"time", TimeOnly, "2304-0567"},
		{"date_human", Layout{Date: true, Human: true}, "A3~01/08"},
		{"time_human", Layout{Time: true, Human: true}, "23:04:05"},
		{"nothing", Layout{Human: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Format(ts); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayoutUsesLocation(t *testing.T) {
	ts := time.Date(2025, time.January, 28, 23, 4, 0, 0, zone)
	if got := DateTime.Format(ts.UTC()); got != "A30128-1504-0000" {
		t.Errorf("Format(UTC) = %q", got)
	}
	if got := DateTime.Format(ts); got != Of(ts) {
		t.Errorf("Format(UTC+8) = %q, Of = %q", got, Of(ts))
	}
}
