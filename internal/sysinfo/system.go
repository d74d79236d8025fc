// Package sysinfo reports application, platform and host facts to the UI.
package sysinfo

import "runtime"

// SystemInfo describes the platform the binary was built for.
type SystemInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	Family    string `json:"family"`
	ExeSuffix string `json:"exe_suffix"`
	DLLPrefix string `json:"dll_prefix"`
	DLLSuffix string `json:"dll_suffix"`
}

// System describes the running binary's platform.
func System() SystemInfo {
	return Describe(runtime.GOOS, runtime.GOARCH)
}

// Describe derives the platform record for a GOOS/GOARCH pair.
func Describe(goos, goarch string) SystemInfo {
	info := SystemInfo{
		OS:        goos,
		Arch:      goarch,
		Family:    family(goos),
		DLLPrefix: "lib",
		DLLSuffix: ".so",
	}

	switch goos {
	case "windows":
		info.ExeSuffix = ".exe"
		info.DLLPrefix = ""
		info.DLLSuffix = ".dll"
	case "darwin", "ios":
		info.DLLSuffix = ".dylib"
	case "js", "wasip1":
		info.ExeSuffix = ".wasm"
		info.DLLPrefix = ""
		info.DLLSuffix = ".wasm"
	}
	return info
}

func family(goos string) string {
	switch goos {
	case "windows":
		return "windows"
	case "js", "wasip1", "plan9":
		return ""
	default:
		return "unix"
	}
}
