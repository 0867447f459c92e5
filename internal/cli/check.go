package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/APoniatowski/awscli-local/internal/app"
)

type checkOptions struct {
	Pkgbuild   string
	Package    string
	IndexURL   string
	TimeoutSec int
	Report     string
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the package index for a newer release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Pkgbuild, "pkgbuild", "PKGBUILD", "Build descriptor path")
	cmd.Flags().StringVar(&opts.Package, "package", "awscli-local", "Package name on the index")
	cmd.Flags().StringVar(&opts.IndexURL, "index-url", "https://pypi.org", "Package index base URL")
	cmd.Flags().IntVar(&opts.TimeoutSec, "http-timeout", 60, "HTTP timeout in seconds (0 = default)")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Optional YAML report output path")
	_ = viper.BindPFlag("pkgbuild", cmd.Flags().Lookup("pkgbuild"))
	_ = viper.BindPFlag("package", cmd.Flags().Lookup("package"))
	_ = viper.BindPFlag("index_url", cmd.Flags().Lookup("index-url"))
	_ = viper.BindPFlag("http_timeout_sec", cmd.Flags().Lookup("http-timeout"))
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(ctx, app.CheckRequest{
		PkgbuildPath:   resolveString(cmd, opts.Pkgbuild, "pkgbuild", "pkgbuild"),
		Package:        resolveString(cmd, opts.Package, "package", "package"),
		IndexURL:       resolveString(cmd, opts.IndexURL, "index_url", "index-url"),
		HTTPTimeoutSec: resolveInt(cmd, opts.TimeoutSec, "http_timeout_sec", "http-timeout"),
		OutputPath:     os.Getenv("GITHUB_OUTPUT"),
		ReportPath:     opts.Report,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Current version: %s\n", result.CurrentVersion)
	fmt.Printf("Latest version: %s\n", result.LatestVersion)
	fmt.Printf("Needs update: %t\n", result.NeedsUpdate)
	for _, entry := range result.Entries() {
		fmt.Printf("Output: %s=%s\n", entry.Key, entry.Value)
	}
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveInt(cmd *cobra.Command, value int, key string, flagName string) int {
	if cmd == nil {
		if value != 0 {
			return value
		}
		return viper.GetInt(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetInt(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
