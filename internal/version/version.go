// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Interactive sky preview, per-class summary table, yaml config
// 0.2.0 - GLB output: spectral palette materials, magnitude-scaled billboards
// 0.1.0 - Initial release: catalog fetch, fixed-width BSC5 parsing
