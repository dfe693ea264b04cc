package typebus

import "testing"

func TestPriority_Order(t *testing.T) {
	ordered := []Priority{PriorityVeryLow, PriorityLow, PriorityDefault, PriorityHigh, PriorityVeryHigh}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%v should be below %v", ordered[i-1], ordered[i])
		}
	}
}

func TestPriority_String(t *testing.T) {
	tests := []struct {
		p    Priority
		want string
	}{
		{PriorityVeryLow, "verylow"},
		{PriorityLow, "low"},
		{PriorityDefault, "default"},
		{PriorityHigh, "high"},
		{PriorityVeryHigh, "veryhigh"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
