// Package shaderbuild compiles the ray tracing shader set to SPIR-V by
// invoking an external GLSL compiler once per source file.
package shaderbuild

import "strings"

const (
	// DefaultCompiler is the compiler binary looked up on PATH.
	DefaultCompiler = "glslc.exe"

	// TargetEnv is the fixed --target-env passed to the compiler.
	TargetEnv = "vulkan1.2"

	// OutputSuffix is appended to a source name to form its artifact name.
	OutputSuffix = ".spv"

	// ErrorMessage is printed once per failed compilation.
	ErrorMessage = "Error"

	// DoneMessage is printed after every shader has been attempted.
	DoneMessage = "Done!"
)

// Stage identifies the ray tracing pipeline stage of a shader source.
type Stage int

const (
	StageUnknown Stage = iota
	StageRaygen
	StageClosestHit
	StageMiss
)

var stageNames = [...]string{
	StageUnknown:    "unknown",
	StageRaygen:     "raygen",
	StageClosestHit: "closesthit",
	StageMiss:       "miss",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return stageNames[StageUnknown]
	}
	return stageNames[s]
}

// stageSuffixes maps recognised file endings to their stage.
var stageSuffixes = []struct {
	suffix string
	stage  Stage
}{
	{".rgen", StageRaygen},
	{".rchit", StageClosestHit},
	{".rmiss", StageMiss},
}

// Shader is the filename of a shader source in the working directory.
type Shader string

// Output returns the SPIR-V artifact name for the shader.
func (s Shader) Output() string {
	return string(s) + OutputSuffix
}

// Stage returns the pipeline stage implied by the file suffix.
func (s Shader) Stage() Stage {
	for _, e := range stageSuffixes {
		if strings.HasSuffix(string(s), e.suffix) {
			return e.stage
		}
	}
	return StageUnknown
}

// Args returns the compiler arguments for the shader, excluding the binary.
func (s Shader) Args() []string {
	return []string{"--target-env=" + TargetEnv, "-o", s.Output(), string(s)}
}

// DefaultShaders returns the shader set in build order.
// Each call returns a new slice.
func DefaultShaders() []Shader {
	return []Shader{
		"raygen.rgen",
		"closesthit.rchit",
		"miss.rmiss",
		"shadow.rmiss",
	}
}
