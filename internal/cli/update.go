package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/APoniatowski/awscli-local/internal/app"
)

type updateOptions struct {
	Pkgbuild   string
	Package    string
	IndexURL   string
	TimeoutSec int
	Verify     bool
}

func newUpdateCommand() *cobra.Command {
	opts := updateOptions{}
	cmd := &cobra.Command{
		Use:   "update <version>",
		Short: "Rewrite the descriptor for a new upstream version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Pkgbuild, "pkgbuild", "PKGBUILD", "Build descriptor path")
	cmd.Flags().StringVar(&opts.Package, "package", "awscli-local", "Package name on the index")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "https://pypi.org", "Package index base URL")
	cmd.Flags().IntVar(&opts.TimeoutSec, "http-timeout", 60, "HTTP timeout in seconds (0 = default)")
	cmd.Flags().BoolVar(&opts.Verify, "verify", true, "Download the artifact and verify its checksum")
	_ = viper.BindPFlag("pkgbuild", cmd.Flags().Lookup("pkgbuild"))
	_ = viper.BindPFlag("package", cmd.Flags().Lookup("package"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("http_timeout_sec", cmd.Flags().Lookup("http-timeout"))
	_ = viper.BindPFlag("verify", cmd.Flags().Lookup("verify"))
	return cmd
}

func runUpdate(ctx context.Context, cmd *cobra.Command, opts updateOptions, targetVersion string) error {
	pkgbuildPath := resolveString(cmd, opts.Pkgbuild, "pkgbuild", "pkgbuild")
	fmt.Printf("Updating %s to version %s\n", pkgbuildPath, targetVersion)
	service := newAppService()
	result, err := service.Update(ctx, app.UpdateRequest{
		PkgbuildPath:   pkgbuildPath,
		Package:        resolveString(cmd, opts.Package, "package", "package"),
		IndexURL:       resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		HTTPTimeoutSec: resolveInt(cmd, opts.TimeoutSec, "http_timeout_sec", "http-timeout"),
		Version:        targetVersion,
		Verify:         resolveBool(cmd, opts.Verify, "verify", "verify"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Download URL: %s\n", result.SourceURL)
	fmt.Printf("SHA256: %s\n", result.SHA256)
	fmt.Printf("updated: %s to %s\n", pkgbuildPath, result.Version)
	return nil
}
