// Package domain contains the core domain models for the release pipeline.
package domain

// StepName identifies a release step.
type StepName string

const (
	// StepFormat rewrites source files to the canonical style.
	StepFormat StepName = "format"
	// StepInstall builds and installs the package into the current environment.
	StepInstall StepName = "install"
	// StepClean removes build output directories.
	StepClean StepName = "clean"
	// StepRegister publishes package metadata to the distribution index.
	StepRegister StepName = "register"
	// StepUpload builds a source distribution and uploads it to the index.
	StepUpload StepName = "upload"
	// StepTag creates a version control tag equal to the declared version.
	StepTag StepName = "tag"
)

// StepStatus represents the status of a step within a pipeline run.
type StepStatus string

const (
	// StatusPending indicates the step has not started yet.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusCompleted indicates the step finished successfully.
	StatusCompleted StepStatus = "Completed"
	// StatusFailed indicates the step failed.
	StatusFailed StepStatus = "Failed"
	// StatusSkipped indicates the step never ran because an earlier step failed.
	StatusSkipped StepStatus = "Skipped"
)

// String returns the step name as a plain string.
func (n StepName) String() string {
	return string(n)
}
