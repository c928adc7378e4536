package domain

import "io"

// ReportWriter abstracts writing a formatted cluster report to a
// destination: a file (when outputPath is set) or a caller-supplied
// writer.
//
// Implementations live in the service layer.
type ReportWriter interface {
    // Write writes formatted content using the provided writeFunc.
    // - If outputPath is non-empty, implementations should create/truncate the file
    //   at that path and pass the file as the writer to writeFunc.
    // - If outputPath is empty, implementations should pass the provided writer to writeFunc.
    // Implementations may emit user-facing status messages (e.g., file paths written).
    Write(writer io.Writer, outputPath string, format OutputFormat, writeFunc func(io.Writer) error) error
}

// ProgressManager tracks the progress of the engine's four named phases
// (internal/constants.PhaseOrder) for the CLI's --verbose output. Each
// phase is a "task" in the sense the interface expects, started once
// before that phase runs and completed once it finishes.
//
// Implemented by service.ProgressManagerImpl.
type ProgressManager interface {
    // Initialize resets tracking for a run over totalUnits work items
    // (typically the vertex count).
    Initialize(totalUnits int)

    StartTask(taskName string)
    CompleteTask(taskName string, success bool)
    UpdateProgress(taskName string, processed, total int)

    SetWriter(writer io.Writer)
    IsInteractive() bool
    Close()
}

