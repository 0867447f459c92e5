package ports

import "github.com/APoniatowski/awscli-local/internal/types"

// ReportWriterPort writes the machine-readable check report.
type ReportWriterPort interface {
	Write(path string, result types.CheckResult) error
}
