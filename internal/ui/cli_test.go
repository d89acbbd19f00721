package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/javiermolinar/meridian/internal/clock"
	"github.com/javiermolinar/meridian/internal/config"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestApp(mutate ...func(*config.Config)) (*App, *fakeClipboard) {
	cfg := config.Default()
	for _, fn := range mutate {
		fn(cfg)
	}
	cb := &fakeClipboard{}
	return NewApp(cfg, WithClipboard(cb)), cb
}

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	WithIO(strings.NewReader(""), &out, &errOut)(a)
	err := a.ExecuteArgs(args...)
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "24 to 12 default", args: []string{"convert", "14:30"}, want: "2:30 PM\n"},
		{name: "midnight", args: []string{"convert", "0"}, want: "12:00 AM\n"},
		{name: "noon", args: []string{"convert", "12:00"}, want: "12:00 PM\n"},
		{name: "12 to 24 pm flag", args: []string{"convert", "--to", "24", "--pm", "2:30"}, want: "14:30\n"},
		{name: "12 to 24 am flag", args: []string{"convert", "--to", "24", "--am", "12:00"}, want: "00:00\n"},
		{name: "suffix wins over flag", args: []string{"convert", "--to", "24", "--am", "11:15 pm"}, want: "23:15\n"},
		{name: "compact suffix", args: []string{"convert", "--to", "24", "7pm"}, want: "19:00\n"},
		{name: "explicit 12 target", args: []string{"convert", "--to", "12", "23:59"}, want: "11:59 PM\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp()
			got, err := execute(t, a, tt.args...)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertCmd_UsesConfiguredMode(t *testing.T) {
	a, _ := newTestApp(func(c *config.Config) {
		c.Clock.Mode = "12to24"
		c.Clock.Meridiem = "pm"
	})
	got, err := execute(t, a, "convert", "2:30")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if got != "14:30\n" {
		t.Errorf("output = %q, want 14:30", got)
	}
}

func TestConvertCmd_MultipleValues(t *testing.T) {
	a, _ := newTestApp()
	got, err := execute(t, a, "convert", "0", "12", "25")

	if !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("err = %v, want ErrInvalidTime", err)
	}
	if !strings.Contains(err.Error(), "1 of 3") {
		t.Errorf("err = %v, want failure count", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	want := []string{"0   → 12:00 AM", "12  → 12:00 PM", "25  → Invalid hour"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestConvertCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "invalid minute", args: []string{"convert", "14:75"}, want: clock.InvalidMinute},
		{name: "dot separator bad minute", args: []string{"convert", "14.75"}, want: clock.InvalidMinute},
		{name: "too many colons", args: []string{"convert", "1:2:3"}, want: clock.InvalidFormat},
		{name: "nothing to convert", args: []string{"convert", ":"}, want: clock.InvalidFormat},
		{name: "strict 24", args: []string{"convert", "24:00"}, want: clock.InvalidHour},
		{name: "13 am", args: []string{"convert", "--to", "24", "13:00"}, want: clock.InvalidHour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp()
			got, err := execute(t, a, tt.args...)
			if !errors.Is(err, ErrInvalidTime) {
				t.Fatalf("err = %v, want ErrInvalidTime", err)
			}
			if strings.TrimSpace(got) != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertCmd_BadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown target", args: []string{"convert", "--to", "13", "14:30"}},
		{name: "am and pm", args: []string{"convert", "--am", "--pm", "2:30"}},
		{name: "no value", args: []string{"convert"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp()
			if _, err := execute(t, a, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConvertCmd_Copy(t *testing.T) {
	a, cb := newTestApp()
	if _, err := execute(t, a, "convert", "--copy", "0", "bogus", "23:59"); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("err = %v, want ErrInvalidTime", err)
	}
	if cb.text != "12:00 AM\n11:59 PM" {
		t.Errorf("clipboard = %q, want only the successful results", cb.text)
	}
}

func TestConvertCmd_CopyFailure(t *testing.T) {
	a, cb := newTestApp()
	cb.err = errors.New("no clipboard")

	_, err := execute(t, a, "convert", "--copy", "14:30")
	if err == nil || !strings.Contains(err.Error(), "copying result") {
		t.Errorf("err = %v, want copy failure", err)
	}
}

func TestConvertOne(t *testing.T) {
	tests := []struct {
		arg      string
		mode     clock.Mode
		meridiem clock.Meridiem
		policy   clock.HourPolicy
		want     string
	}{
		{arg: "24", mode: clock.Mode24To12, policy: clock.AllowMidnight24, want: "12:00 AM"},
		{arg: "24:30", mode: clock.Mode24To12, policy: clock.AllowMidnight24, want: clock.InvalidMinute},
		{arg: "2:30 PM", mode: clock.Mode12To24, meridiem: clock.AM, want: "14:30"},
		{arg: "2:30", mode: clock.Mode12To24, meridiem: clock.PM, want: "14:30"},
		{arg: "", mode: clock.Mode24To12, want: clock.InvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			if got := convertOne(tt.arg, tt.mode, tt.meridiem, tt.policy); got != tt.want {
				t.Errorf("convertOne(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestCheckCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		policy string
		valid  bool
	}{
		{name: "complete", args: []string{"check", "23:59"}, valid: true},
		{name: "partial minute", args: []string{"check", "23:5"}, valid: true},
		{name: "trailing colon", args: []string{"check", "14:"}, valid: true},
		{name: "hour out of range", args: []string{"check", "25"}},
		{name: "dot separator agrees with convert", args: []string{"check", "14.75"}},
		{name: "dot separator valid", args: []string{"check", "14.30"}, valid: true},
		{name: "strict 24", args: []string{"check", "24"}},
		{name: "allow24", args: []string{"check", "24"}, policy: "allow24", valid: true},
		{name: "allow24 with minutes", args: []string{"check", "24:30"}, policy: "allow24"},
		{name: "12-hour range", args: []string{"check", "--to", "24", "13"}},
		{name: "12-hour zero", args: []string{"check", "--to", "24", "0"}},
		{name: "12-hour valid", args: []string{"check", "--to", "24", "12:3"}, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(func(c *config.Config) {
				if tt.policy != "" {
					c.Clock.HourPolicy = tt.policy
				}
			})
			got, err := execute(t, a, tt.args...)
			if tt.valid {
				if err != nil {
					t.Fatalf("err = %v, want nil", err)
				}
				if !strings.HasPrefix(got, "valid") {
					t.Errorf("output = %q, want valid", got)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTime) {
				t.Fatalf("err = %v, want ErrInvalidTime", err)
			}
			if !strings.HasPrefix(got, "invalid") {
				t.Errorf("output = %q, want invalid", got)
			}
		})
	}
}

func TestNormalizeCmd(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "1a4:3x09", want: "14:30"},
		{raw: "123", want: "12"},
		{raw: "9:5:1", want: "9:5"},
		{raw: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a, _ := newTestApp()
			got, err := execute(t, a, "normalize", tt.raw)
			if err != nil {
				t.Fatalf("execute failed: %v", err)
			}
			if got != tt.want+"\n" {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVersionCmd(t *testing.T) {
	a, _ := newTestApp()
	got, err := execute(t, a, "version")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(got, "meridian dev") {
		t.Errorf("output = %q", got)
	}
}
