package app

import (
	"github.com/APoniatowski/awscli-local/internal/adapters"
	"github.com/APoniatowski/awscli-local/internal/ports"
)

// Service wires the three maintenance operations to their adapters.
// Index is left nil by default and constructed per request from the
// configured base URL; tests inject fakes through the exported fields.
type Service struct {
	Pkgbuild ports.PkgbuildPort
	Index    ports.PackageIndexPort
	Srcinfo  ports.SrcinfoWriterPort
	Actions  ports.ActionsOutputPort
	Report   ports.ReportWriterPort
}

func NewService() Service {
	return Service{
		Pkgbuild: adapters.NewPkgbuildFileAdapter(),
		Srcinfo:  adapters.NewSrcinfoFileAdapter(),
		Actions:  adapters.NewActionsOutputAdapter(),
		Report:   adapters.NewReportFileAdapter(),
	}
}

func (s Service) index(baseURL string, timeoutSec int) ports.PackageIndexPort {
	if s.Index != nil {
		return s.Index
	}
	return adapters.NewPyPIIndexAdapter(baseURL, timeoutSec)
}
