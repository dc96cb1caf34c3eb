package document

import (
	"testing"
	"time"
)

func TestParseTimecode(t *testing.T) {
	cases := []struct {
		in   string
		want Timecode
	}{
		{"0:00:00.00", 0},
		{"0:00:01.00", 100},
		{"0:00:03.50", 350},
		{"0:01:00.00", 6000},
		{"1:00:00.00", 360000},
		{"10:59:59.99", 10*360000 + 59*6000 + 59*100 + 99},
	}
	for _, c := range cases {
		got, err := ParseTimecode(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parse %q: expected %d, got %d", c.in, c.want, got)
		}
		if got.String() != c.in {
			t.Fatalf("format %d: expected %q, got %q", got, c.in, got.String())
		}
	}
}

func TestParseTimecodeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "1:2:3.4", "0:00:01", "0:60:00.00", "0:00:61.00", "00.00", "-1:00:00.00"} {
		if _, err := ParseTimecode(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestTimecodeDuration(t *testing.T) {
	if d := Timecode(350).Duration(); d != 3500*time.Millisecond {
		t.Fatalf("expected 3.5s, got %v", d)
	}
	if tc := TimecodeFromDuration(3500 * time.Millisecond); tc != 350 {
		t.Fatalf("expected 350cs, got %d", tc)
	}
}
