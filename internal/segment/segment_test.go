package segment

import "testing"

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		start   float64
		end     float64
		wantErr bool
	}{
		{"valid", 1.0, 2.0, false},
		{"zero start", 0.0, 0.5, false},
		{"negative start", -0.1, 2.0, true},
		{"zero duration", 1.0, 1.0, true},
		{"inverted", 2.0, 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Options{StartTime: tt.start, EndTime: tt.end})
			if (err != nil) != tt.wantErr {
				t.Errorf(
					"New(start=%v, end=%v) error = %v, wantErr %v",
					tt.start, tt.end, err, tt.wantErr,
				)
			}
		})
	}
}

func TestNewGeneratesID(t *testing.T) {
	a, err := New(Options{StartTime: 0, EndTime: 1})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	b, err := New(Options{StartTime: 0, EndTime: 1})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if a.ID() == "" {
		t.Error("expected a generated ID")
	}
	if a.ID() == b.ID() {
		t.Error("expected distinct generated IDs")
	}
}

func TestSetStartTimeClamps(t *testing.T) {
	seg, err := New(Options{StartTime: 1.0, EndTime: 3.0})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	seg.SetStartTime(-5.0)
	if seg.StartTime() != 0 {
		t.Errorf("start = %v, want clamped to 0", seg.StartTime())
	}

	// a write that would invert the interval is ignored
	seg.SetStartTime(3.0)
	if seg.StartTime() != 0 {
		t.Errorf("start = %v, inverting write should be ignored", seg.StartTime())
	}

	seg.SetStartTime(2.5)
	if seg.StartTime() != 2.5 {
		t.Errorf("start = %v, want 2.5", seg.StartTime())
	}
}

func TestSetEndTimeClamps(t *testing.T) {
	seg, err := New(Options{StartTime: 1.0, EndTime: 3.0})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	seg.SetEndTime(1.0)
	if seg.EndTime() != 3.0 {
		t.Errorf("end = %v, inverting write should be ignored", seg.EndTime())
	}

	seg.SetEndTime(5.0)
	if seg.EndTime() != 5.0 {
		t.Errorf("end = %v, want 5.0", seg.EndTime())
	}
}

func TestContains(t *testing.T) {
	seg, err := New(Options{StartTime: 1.0, EndTime: 3.0})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	tests := []struct {
		time float64
		want bool
	}{
		{0.5, false},
		{1.0, true},
		{2.0, true},
		{3.0, false}, // end is exclusive
		{4.0, false},
	}
	for _, tt := range tests {
		if got := seg.Contains(tt.time); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.time, got, tt.want)
		}
	}
}
