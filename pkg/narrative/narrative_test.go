package narrative

import (
	"strings"
	"testing"
)

func TestWeekFocus(t *testing.T) {
	want := []string{
		FocusFoundation, FocusFoundation,
		FocusCore, FocusCore,
		FocusAdvanced, FocusAdvanced,
		FocusPortfolio, FocusPortfolio,
	}
	for i, w := range want {
		if got := WeekFocus(i); got != w {
			t.Errorf("WeekFocus(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestWeekReasonFallback(t *testing.T) {
	if !strings.HasPrefix(WeekReason(0), "Foundation week") {
		t.Fatalf("WeekReason(0) = %q", WeekReason(0))
	}
	if !strings.HasPrefix(WeekReason(7), "Interview preparation") {
		t.Fatalf("WeekReason(7) = %q", WeekReason(7))
	}
	for _, i := range []int{8, 20, -1} {
		if got := WeekReason(i); got != "Continued skill development and practice" {
			t.Errorf("WeekReason(%d) = %q", i, got)
		}
	}
}

func TestRiskTemplate(t *testing.T) {
	cases := map[int]int{0: 0, 34: 0, 35: 1, 69: 1, 70: 2, 100: 2, -5: 0}
	for score, want := range cases {
		if got := RiskTemplate(score); got != want {
			t.Errorf("RiskTemplate(%d) = %d, want %d", score, got, want)
		}
	}
}

func TestRiskStatement(t *testing.T) {
	cases := []struct {
		name string
		in   RiskInput
		want string
	}{
		{
			name: "low score plural",
			in:   RiskInput{Score: 29, CriticalMissing: 3, Missing: []string{"React.js or Vue.js", "Responsive design"}, TargetLevel: "junior"},
			want: "You're missing 3 critical skills. At junior level, React.js or Vue.js is non-negotiable and will filter you out in 80% of resume screenings.",
		},
		{
			name: "low score singular without missing",
			in:   RiskInput{Score: 10, CriticalMissing: 1, TargetLevel: "intern"},
			want: "You're missing 1 critical skill. At intern level, practical experience is non-negotiable and will filter you out in 80% of resume screenings.",
		},
		{
			name: "middle score takes two",
			in:   RiskInput{Score: 50, Missing: []string{"A", "B", "C"}, TargetLevel: "mid"},
			want: "Without solid A and B, you will struggle in technical interviews. Most mid positions require demonstrated ability in these areas.",
		},
		{
			name: "middle score single",
			in:   RiskInput{Score: 69, Missing: []string{"A"}, TargetLevel: "mid"},
			want: "Without solid A, you will struggle in technical interviews. Most mid positions require demonstrated ability in these areas.",
		},
		{
			name: "high score",
			in:   RiskInput{Score: 90, ExperienceLevel: "advanced"},
			want: "Your advanced experience level requires demonstrable projects. Listing skills without portfolio evidence reduces your callback rate by 60-70%. Interviewers will test depth, not just breadth.",
		},
	}
	for _, tc := range cases {
		if got := RiskStatement(tc.in); got != tc.want {
			t.Errorf("%s:\n got %q\nwant %q", tc.name, got, tc.want)
		}
	}
}
