package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// SrcinfoFileAdapter overwrites the derived metadata file
// unconditionally; the file carries no state of its own.
type SrcinfoFileAdapter struct{}

func NewSrcinfoFileAdapter() SrcinfoFileAdapter {
	return SrcinfoFileAdapter{}
}

func (a SrcinfoFileAdapter) Write(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write srcinfo").
			WithCause(err)
	}
	return nil
}
