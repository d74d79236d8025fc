//go:build !dev && !debug

package desktop

// DevBuild is true for `wails dev` and `wails build -debug` binaries.
const DevBuild = false
