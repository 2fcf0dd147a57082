// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"testing"

	"github.com/pdiddy/orcaconv/internal/convert"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		choice  string
		want    convert.Decision
		wantAll bool
	}{
		{choiceKeep, convert.DecisionKeep, false},
		{choiceKeepAll, convert.DecisionKeep, true},
		{choiceDiscard, convert.DecisionDiscard, false},
		{choiceDiscardAll, convert.DecisionDiscard, true},
		{"", convert.DecisionUndecided, false},
		{"bogus", convert.DecisionUndecided, false},
	}
	for _, tt := range tests {
		d, all := parseChoice(tt.choice)
		if d != tt.want || all != tt.wantAll {
			t.Errorf("parseChoice(%q) = (%v, %v), want (%v, %v)",
				tt.choice, d, all, tt.want, tt.wantAll)
		}
	}
}

func TestStatic(t *testing.T) {
	s := Static{Decision: convert.DecisionKeep}

	d, err := s.Decide("profile", "compatible_printers_condition", "x==1")
	if err != nil {
		t.Fatal(err)
	}
	if d != convert.DecisionKeep {
		t.Errorf("Decide = %v, want keep", d)
	}
	if !s.Sticky() {
		t.Error("static answers apply to all profiles")
	}
}

func TestTerminalStickyShortCircuits(t *testing.T) {
	// A sticky terminal answers from memory; no TTY involved.
	term := &Terminal{sticky: true, last: convert.DecisionDiscard}

	d, err := term.Decide("profile", "compatible_prints_condition", "x==1")
	if err != nil {
		t.Fatal(err)
	}
	if d != convert.DecisionDiscard {
		t.Errorf("Decide = %v, want discard", d)
	}
}
