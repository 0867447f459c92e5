package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/APoniatowski/awscli-local/internal/app"
)

type srcinfoOptions struct {
	Pkgbuild string
	Srcinfo  string
}

func newSrcinfoCommand() *cobra.Command {
	opts := srcinfoOptions{}
	cmd := &cobra.Command{
		Use:   "srcinfo",
		Short: "Regenerate the derived metadata file from the descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSrcinfo(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Pkgbuild, "pkgbuild", "PKGBUILD", "Build descriptor path")
	cmd.Flags().StringVar(&opts.Srcinfo, "srcinfo", ".SRCINFO", "Derived metadata output path")
	_ = viper.BindPFlag("pkgbuild", cmd.Flags().Lookup("pkgbuild"))
	_ = viper.BindPFlag("srcinfo", cmd.Flags().Lookup("srcinfo"))
	return cmd
}

func runSrcinfo(cmd *cobra.Command, opts srcinfoOptions) error {
	service := newAppService()
	result, err := service.GenerateSrcinfo(app.SrcinfoRequest{
		PkgbuildPath: resolveString(cmd, opts.Pkgbuild, "pkgbuild", "pkgbuild"),
		SrcinfoPath:  resolveString(cmd, opts.Srcinfo, "srcinfo", "srcinfo"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("generated: %s\n", result.Path)
	return nil
}
