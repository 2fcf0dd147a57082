// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive collaborator the conversion
// engine consults for compatibility-condition parameters. The terminal
// implementation is the only place in the repository that talks to a TTY.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/pdiddy/orcaconv/internal/convert"
)

// choices presented for a compatibility condition. The "for all" variants
// make the answer stick for every remaining profile in the run.
const (
	choiceKeep       = "keep"
	choiceKeepAll    = "keep-all"
	choiceDiscard    = "discard"
	choiceDiscardAll = "discard-all"
)

// Terminal asks the operator on the controlling terminal whether to keep a
// compatibility condition. Keeping one hides the converted profile in the
// target application unless its compatibility expression matches, so the
// call is deferred to a human.
type Terminal struct {
	sticky bool
	last   convert.Decision
}

// NewTerminal creates a Terminal prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Decide implements convert.Decider. Once the operator picks a "for all"
// choice, later calls answer from memory without prompting.
func (t *Terminal) Decide(profile, parameter, value string) (convert.Decision, error) {
	if t.sticky {
		return t.last, nil
	}

	var choice string
	err := huh.NewSelect[string]().
		Title(fmt.Sprintf("%s: keep %s?", profile, parameter)).
		Description(value).
		Options(
			huh.NewOption("Keep", choiceKeep),
			huh.NewOption("Keep for all profiles", choiceKeepAll),
			huh.NewOption("Discard", choiceDiscard),
			huh.NewOption("Discard for all profiles", choiceDiscardAll),
		).
		Value(&choice).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return convert.DecisionUndecided, nil
		}
		return convert.DecisionUndecided, err
	}

	decision, all := parseChoice(choice)
	if all {
		t.sticky = true
		t.last = decision
	}
	return decision, nil
}

// Sticky reports whether the operator opted to apply the last answer to all
// remaining profiles; the CLI keeps the engine's decision slots across
// profiles only in that case.
func (t *Terminal) Sticky() bool {
	return t.sticky
}

func parseChoice(choice string) (d convert.Decision, all bool) {
	switch choice {
	case choiceKeep:
		return convert.DecisionKeep, false
	case choiceKeepAll:
		return convert.DecisionKeep, true
	case choiceDiscard:
		return convert.DecisionDiscard, false
	case choiceDiscardAll:
		return convert.DecisionDiscard, true
	}
	return convert.DecisionUndecided, false
}

// Static is a non-interactive Decider that always answers the same way.
type Static struct {
	Decision convert.Decision
}

// Decide implements convert.Decider.
func (s Static) Decide(profile, parameter, value string) (convert.Decision, error) {
	return s.Decision, nil
}

// Sticky implements the same optional interface as Terminal; a static
// answer applies to every profile by construction.
func (s Static) Sticky() bool {
	return true
}

// IsInteractive reports whether stdin is a terminal; piped input cannot
// answer a prompt.
func IsInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
