package ytdlp

import "testing"

func TestParseProgress(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		want   float64
		wantOK bool
	}{
		{"zero", "download 0.0%", 0, true},
		{"no percent", "no percent here", 0, false},
		{"first token wins", "50% 30%", 50, true},
		{"non numeric", "abc%", 0, false},
		{"empty", "", 0, false},
		{"yt-dlp line", "[download]  45.3% of   10.00MiB at    1.21MiB/s ETA 00:07", 45.3, true},
		{"complete", "[download] 100% of 5.00MiB in 00:00:02 at 2.10MiB/s", 100, true},
		{"skips malformed before valid", "x% 12.5%", 12.5, true},
		{"number without percent sign counts", "frame 12 of 40%", 12, true},
		{"numbers but no percent", "[download] Destination: 2024 recap.mp4", 0, false},
		{"out of range kept", "[download] 250%", 250, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseProgress(tc.line)
			if ok != tc.wantOK {
				t.Fatalf("ParseProgress(%q) ok = %v, want %v", tc.line, ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("ParseProgress(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}
