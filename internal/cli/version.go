package cli

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/Sriram-PR/go-wildpat/internal/flags/enum"
)

const (
	VersionFormatFlag = "format"
	VersionFormatText = "text"
	VersionFormatJSON = "json"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version    string `json:"version"`
	Major      uint64 `json:"major"`
	Minor      uint64 `json:"minor"`
	Patch      uint64 `json:"patch"`
	PreRelease string `json:"prerelease,omitempty"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := enum.Get(cmd.Flags(), VersionFormatFlag)
			if err != nil {
				return err
			}
			bi, ok := debug.ReadBuildInfo()
			if !ok {
				return fmt.Errorf("build information not available")
			}
			info := GetVersionInfo(bi.Main.Version)
			if format == VersionFormatJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(info)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wildpat %s (%s, %s)\n", info.Version, info.GoVersion, info.Platform)
			return err
		},
	}
	enum.VarP(cmd.Flags(), VersionFormatFlag, "f", []string{VersionFormatText, VersionFormatJSON}, "output format")
	return cmd
}

// GetVersionInfo parses version as semver. Versions that are not valid
// semver, such as "(devel)", are reported as-is with a zero version.
func GetVersionInfo(version string) VersionInfo {
	info := VersionInfo{
		Version:   version,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return info
	}
	info.Version = v.String()
	info.Major, info.Minor, info.Patch = v.Major(), v.Minor(), v.Patch()
	info.PreRelease = v.Prerelease()
	return info
}
