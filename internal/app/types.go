package app

type CheckRequest struct {
	PkgbuildPath   string
	Package        string
	IndexURL       string
	HTTPTimeoutSec int
	OutputPath     string
	ReportPath     string
}

type SrcinfoRequest struct {
	PkgbuildPath string
	SrcinfoPath  string
}

type SrcinfoResult struct {
	PackageName string
	Path        string
}

type UpdateRequest struct {
	PkgbuildPath   string
	Package        string
	IndexURL       string
	HTTPTimeoutSec int
	Version        string
	Verify         bool
}

type UpdateResult struct {
	Version   string
	SourceURL string
	SHA256    string
}
