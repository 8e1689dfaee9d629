package journey

import (
	"time"

	"optout/internal/language"
)

// Journey is the ordered, per-broker sequence of removal steps with
// progress and completion tracking. StepsEN and StepsES are parallel
// arrays: same length, same relative order, mutated only in lockstep.
type Journey struct {
	Broker      string
	StepsEN     []string
	StepsES     []string
	CurrentStep int
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StepsFor returns the step list for a display language, falling back to
// English when no Spanish steps exist.
func (j *Journey) StepsFor(lang language.Lang) []string {
	if lang == language.Spanish && len(j.StepsES) > 0 {
		return j.StepsES
	}
	return j.StepsEN
}

// AtLastStep reports whether the current step is the final one.
func (j *Journey) AtLastStep() bool {
	return len(j.StepsEN) > 0 && j.CurrentStep >= len(j.StepsEN)-1
}

// advance moves forward one step. Advancing from the last step is the
// terminal transition to completed; once completed, advance is a no-op.
func (j *Journey) advance() {
	if j.Completed || len(j.StepsEN) == 0 {
		return
	}
	if j.CurrentStep < len(j.StepsEN)-1 {
		j.CurrentStep++
		return
	}
	j.Completed = true
}

// rewind moves back one step. Allowed while completed: the index moves but
// the completed flag stays set.
func (j *Journey) rewind() {
	if j.CurrentStep > 0 {
		j.CurrentStep--
	}
}

// reorder moves the step at from to position to in both language lists in
// lockstep, adjusting CurrentStep to keep pointing at the same step.
func (j *Journey) reorder(from, to int) error {
	n := len(j.StepsEN)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrInvalidIndex
	}
	if from == to {
		return nil
	}
	moveStep(j.StepsEN, from, to)
	moveStep(j.StepsES, from, to)
	switch {
	case j.CurrentStep == from:
		j.CurrentStep = to
	case from < j.CurrentStep && to >= j.CurrentStep:
		j.CurrentStep--
	case from > j.CurrentStep && to <= j.CurrentStep:
		j.CurrentStep++
	}
	return nil
}

// appendStep adds the same literal text to both language lists. User
// steps are not translated.
func (j *Journey) appendStep(text string) {
	j.StepsEN = append(j.StepsEN, text)
	j.StepsES = append(j.StepsES, text)
}

func moveStep(steps []string, from, to int) {
	if from >= len(steps) || to >= len(steps) {
		return
	}
	step := steps[from]
	if from < to {
		copy(steps[from:], steps[from+1:to+1])
	} else {
		copy(steps[to+1:], steps[to:from])
	}
	steps[to] = step
}
