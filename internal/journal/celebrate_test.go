package journal

import "testing"

func TestCompletionDetectorFiresOncePerTransition(t *testing.T) {
	var d CompletionDetector

	counts := []int{1, 2, 3, 3, 2, 3}
	wantFires := []bool{false, false, true, false, false, true}

	for i, count := range counts {
		if got := d.Observe(count); got != wantFires[i] {
			t.Errorf("Observe(%d) at step %d = %v, want %v", count, i, got, wantFires[i])
		}
	}
}

func TestCompletionDetectorIgnoresRepeatedComplete(t *testing.T) {
	var d CompletionDetector

	if !d.Observe(3) {
		t.Fatalf("first completion did not fire")
	}
	// Re-renders of an already complete day, or toggling between two
	// complete days, never re-fire.
	for i := 0; i < 10; i++ {
		if d.Observe(3) {
			t.Fatalf("re-observation of complete state fired at iteration %d", i)
		}
	}
}

func TestCompletionDetectorStartsFalse(t *testing.T) {
	var d CompletionDetector
	if d.Observe(0) {
		t.Errorf("empty day fired the celebration")
	}
	if d.Observe(2) {
		t.Errorf("partial day fired the celebration")
	}
}

func TestMilestoneDetector(t *testing.T) {
	tests := []struct {
		name    string
		streaks []int
		want    []bool
	}{
		{
			name:    "multiples of seven fire",
			streaks: []int{7},
			want:    []bool{true},
		},
		{
			name:    "non-multiples do not fire",
			streaks: []int{1, 6, 8, 13},
			want:    []bool{false, false, false, false},
		},
		{
			name:    "zero does not fire",
			streaks: []int{0},
			want:    []bool{false},
		},
		{
			name:    "same value does not re-fire on reload",
			streaks: []int{7, 7, 7},
			want:    []bool{true, false, false},
		},
		{
			name:    "jump across milestones fires on the new value",
			streaks: []int{7, 14},
			want:    []bool{true, true},
		},
		{
			name:    "server can jump by more than one",
			streaks: []int{5, 21},
			want:    []bool{false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d MilestoneDetector
			for i, streak := range tt.streaks {
				if got := d.Observe(streak); got != tt.want[i] {
					t.Errorf("Observe(%d) at step %d = %v, want %v", streak, i, got, tt.want[i])
				}
			}
		})
	}
}
