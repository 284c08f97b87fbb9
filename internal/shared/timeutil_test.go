package shared

import "testing"

func TestToMinutes(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: 540},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "23:59", want: 1439},
		{name: "no leading zero", input: "9:30", want: 570},
		{name: "empty", input: "", wantErr: true},
		{name: "missing minutes", input: "09", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "12:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ToMinutes(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToMinutes(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestElapsedHours(t *testing.T) {
	tc := []struct {
		name                             string
		start, end, pauseStart, pauseEnd string
		want                             float64
	}{
		{name: "plain four hours", start: "09:00", end: "13:00", want: 4.0},
		{name: "with pause", start: "14:00", end: "18:00", pauseStart: "16:00", pauseEnd: "16:30", want: 3.5},
		{name: "pause swallows session", start: "10:00", end: "11:00", pauseStart: "09:00", pauseEnd: "12:00", want: 0},
		{name: "overnight clamps to zero", start: "22:00", end: "02:00", want: 0},
		{name: "half open pause ignored", start: "09:00", end: "12:00", pauseStart: "10:00", want: 3.0},
		{name: "malformed start", start: "late", end: "12:00", want: 0},
		{name: "malformed pause ignored", start: "09:00", end: "12:00", pauseStart: "x", pauseEnd: "y", want: 3.0},
		{name: "empty inputs", want: 0},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedHours(tt.start, tt.end, tt.pauseStart, tt.pauseEnd)
			if got != tt.want {
				t.Errorf("ElapsedHours(%q, %q, %q, %q) = %v, want %v",
					tt.start, tt.end, tt.pauseStart, tt.pauseEnd, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain integer", input: "200", want: 200},
		{name: "dot decimal", input: "1234.56", want: 1234.56},
		{name: "brazilian currency", input: "R$ 1.234,56", want: 1234.56},
		{name: "comma decimal", input: "37,5", want: 37.5},
		{name: "spaces and symbols", input: " R$  40 ", want: 40},
		{name: "empty", input: "", want: 0},
		{name: "garbage", input: "abc", want: 0},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseAmount(tt.input); got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tc := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "small", input: 40, want: "R$ 40,00"},
		{name: "thousands", input: 1234.5, want: "R$ 1.234,50"},
		{name: "zero", input: 0, want: "R$ 0,00"},
		{name: "negative overpayment", input: -25, want: "-R$ 25,00"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBRL(tt.input); got != tt.want {
				t.Errorf("FormatBRL(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
