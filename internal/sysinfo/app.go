package sysinfo

import (
	"runtime"
	"runtime/debug"
)

// wailsModule is the host runtime whose version is reported in AppInfo.
const wailsModule = "github.com/wailsapp/wails/v2"

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// AppInfo is the snapshot returned by get_app_info.
type AppInfo struct {
	Name         string `json:"name"`
	Version      string `json:"version"`
	WailsVersion string `json:"wails_version"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
	Arch         string `json:"arch"`
	Debug        bool   `json:"debug"`
}

// App builds the record for the named application.
func App(name, version string, debugBuild bool) AppInfo {
	return AppInfo{
		Name:         name,
		Version:      version,
		WailsVersion: RuntimeVersion(),
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS,
		Arch:         runtime.GOARCH,
		Debug:        debugBuild,
	}
}

// RuntimeVersion returns the Wails module version linked into the binary,
// or "unknown" when build info is unavailable.
func RuntimeVersion() string {
	bi, ok := readBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path != wailsModule {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
