package shaderbuild

import (
	"reflect"
	"testing"
)

func TestShaderOutput(t *testing.T) {
	for _, s := range DefaultShaders() {
		want := string(s) + ".spv"
		if got := s.Output(); got != want {
			t.Errorf("%s: expected output %s, got %s", s, want, got)
		}
	}

	// Names that already look like artifacts are not special-cased.
	if got := Shader("foo.spv").Output(); got != "foo.spv.spv" {
		t.Errorf("expected foo.spv.spv, got %s", got)
	}
}

func TestShaderStage(t *testing.T) {
	tests := []struct {
		shader Shader
		want   Stage
	}{
		{"raygen.rgen", StageRaygen},
		{"closesthit.rchit", StageClosestHit},
		{"miss.rmiss", StageMiss},
		{"shadow.rmiss", StageMiss},
		{"shader.frag", StageUnknown},
		{"rgen", StageUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.shader), func(t *testing.T) {
			if got := tt.shader.Stage(); got != tt.want {
				t.Errorf("expected stage %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStageString(t *testing.T) {
	if StageClosestHit.String() != "closesthit" {
		t.Errorf("expected closesthit, got %s", StageClosestHit)
	}
	if Stage(42).String() != "unknown" {
		t.Errorf("expected unknown for out of range stage, got %s", Stage(42))
	}
}

func TestShaderArgs(t *testing.T) {
	got := Shader("raygen.rgen").Args()
	want := []string{"--target-env=vulkan1.2", "-o", "raygen.rgen.spv", "raygen.rgen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected args %v, got %v", want, got)
	}
}

func TestDefaultShaders(t *testing.T) {
	want := []Shader{"raygen.rgen", "closesthit.rchit", "miss.rmiss", "shadow.rmiss"}

	shaders := DefaultShaders()
	if !reflect.DeepEqual(shaders, want) {
		t.Fatalf("expected %v, got %v", want, shaders)
	}

	// Mutating a returned slice must not leak into later calls.
	shaders[0] = "changed.rgen"
	if DefaultShaders()[0] != "raygen.rgen" {
		t.Error("DefaultShaders returned shared state")
	}

	seen := make(map[Shader]bool)
	for _, s := range DefaultShaders() {
		if seen[s] {
			t.Errorf("duplicate shader %s", s)
		}
		seen[s] = true
	}
}
