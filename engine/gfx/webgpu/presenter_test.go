package wgpubackend

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestApplyResize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantApplied  bool
		wantW, wantH uint32
	}{
		{"normal", 800, 600, true, 800, 600},
		{"zero width", 0, 600, false, 1024, 768},
		{"zero height", 800, 0, false, 1024, 768},
		{"both zero", 0, 0, false, 1024, 768},
		{"negative", -1, 600, false, 1024, 768},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := wgpu.SurfaceConfiguration{Width: 1024, Height: 768}
			if got := applyResize(&config, tt.w, tt.h); got != tt.wantApplied {
				t.Fatalf("applyResize(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.wantApplied)
			}
			if config.Width != tt.wantW || config.Height != tt.wantH {
				t.Errorf("config size = %dx%d, want %dx%d", config.Width, config.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPickSurfaceFormatPrefersSRGB(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			"srgb later in list",
			[]wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatBGRA8UnormSrgb},
			wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			"srgb first",
			[]wgpu.TextureFormat{wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm},
			wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			"no srgb falls back to first",
			[]wgpu.TextureFormat{wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatBGRA8Unorm},
			wgpu.TextureFormatRGBA8Unorm,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pickSurfaceFormat(tt.formats); got != tt.want {
				t.Errorf("pickSurfaceFormat = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVertexBufferLayoutMatchesVertexType(t *testing.T) {
	layout := vertexBufferLayout()
	if layout.ArrayStride != 20 {
		t.Errorf("stride = %d, want 20 (3+2 float32s)", layout.ArrayStride)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("attribute count = %d, want 2", len(layout.Attributes))
	}
	if layout.Attributes[0].Offset != 0 || layout.Attributes[0].Format != wgpu.VertexFormatFloat32x3 {
		t.Errorf("position attribute = %+v", layout.Attributes[0])
	}
	if layout.Attributes[1].Offset != 12 || layout.Attributes[1].Format != wgpu.VertexFormatFloat32x2 {
		t.Errorf("texcoord attribute = %+v", layout.Attributes[1])
	}
}
