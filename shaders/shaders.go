// Package shaders holds the ray tracing shader sources. Run `go generate` to
// rebuild the SPIR-V artifacts next to them.
package shaders

//go:generate go run github.com/Faultbox/shaderbuild/cmd/shaderbuild
