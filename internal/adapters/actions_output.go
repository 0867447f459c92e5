package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/APoniatowski/awscli-local/internal/types"
)

// ActionsOutputAdapter appends key=value lines to the outputs file the
// CI workflow reads. Appending, not truncating: other steps may have
// written their own outputs to the same file already.
type ActionsOutputAdapter struct{}

func NewActionsOutputAdapter() ActionsOutputAdapter {
	return ActionsOutputAdapter{}
}

func (a ActionsOutputAdapter) Append(path string, entries []types.OutputEntry) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open outputs file").
			WithCause(err)
	}
	defer file.Close()
	for _, entry := range entries {
		if _, err := file.WriteString(entry.Key + "=" + entry.Value + "\n"); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write outputs file").
				WithCause(err)
		}
	}
	return nil
}
