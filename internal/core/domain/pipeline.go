package domain

import "go.trai.ch/zerr"

// releaseOrder is the fixed sequence the release pipeline runs.
// format and install are developer-time concerns and are deliberately
// excluded from the publish pipeline.
var releaseOrder = []StepName{StepClean, StepRegister, StepUpload, StepTag}

// ReleaseSteps returns the ordered step list for the aggregate release
// pipeline. The returned slice is a copy.
func ReleaseSteps() []StepName {
	steps := make([]StepName, len(releaseOrder))
	copy(steps, releaseOrder)
	return steps
}

// Steps lists every step the tool exposes.
func Steps() []StepName {
	return []StepName{StepFormat, StepInstall, StepClean, StepRegister, StepUpload, StepTag}
}

// ParseStepName validates a step name supplied by the caller.
func ParseStepName(s string) (StepName, error) {
	for _, name := range Steps() {
		if s == name.String() {
			return name, nil
		}
	}
	return "", zerr.With(ErrUnknownStep, "step", s)
}
