package ports

import "github.com/APoniatowski/awscli-local/internal/types"

// ActionsOutputPort appends key=value lines to the outputs file an
// external automation system consumes.
type ActionsOutputPort interface {
	Append(path string, entries []types.OutputEntry) error
}
