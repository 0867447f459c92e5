package ports

// SrcinfoWriterPort overwrites the derived metadata file.
type SrcinfoWriterPort interface {
	Write(path string, content string) error
}
