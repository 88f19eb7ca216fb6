package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true}, // zero amounts are allowed
		{"1.005", 101, true},
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5000, "50.00"},
		{1234, "12.34"},
		{5, "0.05"},
		{-80000, "-800.00"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).String(); got != tc.want {
			t.Fatalf("%d cents: expected %q, got %q", tc.cents, tc.want, got)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 5000, 123456789} {
		in := Money{Cents: cents}
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal %d: %v", cents, err)
		}
		var out Money
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if out != in {
			t.Fatalf("round trip %d: got %d", cents, out.Cents)
		}
	}
}

func TestMoneyUnmarshalPlainNumber(t *testing.T) {
	// Snapshots written by the original app store bare numbers like 50.
	var m Money
	if err := json.Unmarshal([]byte(`50`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.Cents != 5000 {
		t.Fatalf("expected 5000 cents, got %d", m.Cents)
	}
}
