package intake

import "testing"

func TestParseDate_NumericSlash(t *testing.T) {
	iso, ok := ParseDate("10/05/1990")
	if !ok || iso != "1990-10-05" {
		t.Fatalf("expected 1990-10-05, got %q (ok=%v)", iso, ok)
	}
}

func TestParseDate_NumericDash(t *testing.T) {
	iso, ok := ParseDate("3-7-2012")
	if !ok || iso != "2012-03-07" {
		t.Fatalf("expected 2012-03-07, got %q (ok=%v)", iso, ok)
	}
}

func TestParseDate_MonthNameYearDefaultsToFirst(t *testing.T) {
	for _, in := range []string{"March 2015", "Mar 2015", "March, 2015"} {
		iso, ok := ParseDate(in)
		if !ok || iso != "2015-03-01" {
			t.Fatalf("ParseDate(%q): expected 2015-03-01, got %q (ok=%v)", in, iso, ok)
		}
	}
}

func TestParseDate_GenericFallback(t *testing.T) {
	iso, ok := ParseDate("January 15, 2003")
	if !ok || iso != "2003-01-15" {
		t.Fatalf("expected 2003-01-15, got %q (ok=%v)", iso, ok)
	}
}

func TestParseDate_RejectsImplausibleYears(t *testing.T) {
	for _, in := range []string{"01/01/1850", "06/06/3050", "February 1899"} {
		if iso, ok := ParseDate(in); ok {
			t.Fatalf("ParseDate(%q): expected rejection, got %q", in, iso)
		}
	}
}

func TestParseDate_RejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not a date", "13/45/1990", "99/99/9999"} {
		if iso, ok := ParseDate(in); ok {
			t.Fatalf("ParseDate(%q): expected rejection, got %q", in, iso)
		}
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	if got := FormatDate("1990-10-05"); got != "10/05/1990" {
		t.Fatalf("expected 10/05/1990, got %q", got)
	}
}

func TestFormatDate_SlashFallback(t *testing.T) {
	// Day without zero padding fails ISO construction but still reorders.
	if got := FormatDate("1990-10-5"); got != "10/5/1990" {
		t.Fatalf("expected 10/5/1990, got %q", got)
	}
	if got := FormatDate("already formatted"); got != "already formatted" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestParseDate_IdempotentThroughFormat(t *testing.T) {
	inputs := []string{"10/05/1990", "3-7-2012", "March 2015", "January 15, 2003"}
	for _, in := range inputs {
		first, ok := ParseDate(in)
		if !ok {
			t.Fatalf("ParseDate(%q) failed", in)
		}
		second, ok := ParseDate(FormatDate(first))
		if !ok || second != first {
			t.Fatalf("ParseDate(FormatDate(%q)) = %q, want %q", in, second, first)
		}
	}
}
