package wgpubackend

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/cprohoda/learnwgpu/engine/render"
)

//go:embed shaders/standard.wgsl
var standardWGSL string

//go:embed shaders/position_color.wgsl
var positionColorWGSL string

// PipelineSet owns the two precompiled render pipelines. The pair is
// deliberately asymmetric: the standard pipeline consumes the shape vertex
// buffer plus texture and camera bind groups, the position-color pipeline
// consumes nothing at all. Mode switches are lookups, never recompiles.
type PipelineSet struct {
	standard      *wgpu.RenderPipeline
	positionColor *wgpu.RenderPipeline
}

// NewPipelineSet compiles both shader pairs against the surface format.
// textureLayout and cameraLayout are the bind group layouts the standard
// shader declares at groups 0 and 1.
func NewPipelineSet(device *wgpu.Device, format wgpu.TextureFormat, textureLayout, cameraLayout *wgpu.BindGroupLayout) (*PipelineSet, error) {
	standard, err := buildStandardPipeline(device, format, textureLayout, cameraLayout)
	if err != nil {
		return nil, err
	}

	positionColor, err := buildPositionColorPipeline(device, format)
	if err != nil {
		standard.Release()
		return nil, err
	}

	return &PipelineSet{standard: standard, positionColor: positionColor}, nil
}

// Active returns the pipeline for a mode.
func (ps *PipelineSet) Active(m render.Mode) *wgpu.RenderPipeline {
	if m == render.ModePositionColor {
		return ps.positionColor
	}
	return ps.standard
}

func (ps *PipelineSet) Release() {
	if ps.positionColor != nil {
		ps.positionColor.Release()
		ps.positionColor = nil
	}
	if ps.standard != nil {
		ps.standard.Release()
		ps.standard = nil
	}
}

func buildStandardPipeline(device *wgpu.Device, format wgpu.TextureFormat, textureLayout, cameraLayout *wgpu.BindGroupLayout) (*wgpu.RenderPipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Standard Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: standardWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("compile standard shader: %w", err)
	}
	defer module.Release()

	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Standard Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{textureLayout, cameraLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("standard pipeline layout: %w", err)
	}
	defer layout.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Standard Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &replaceBlend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive:   trianglePrimitive,
		Multisample: singleSample,
	})
	if err != nil {
		return nil, fmt.Errorf("standard render pipeline: %w", err)
	}
	return pipeline, nil
}

func buildPositionColorPipeline(device *wgpu.Device, format wgpu.TextureFormat) (*wgpu.RenderPipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "Position Color Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: positionColorWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("compile position-color shader: %w", err)
	}
	defer module.Release()

	// This shader declares no bind groups and no vertex inputs, so its
	// layout is empty rather than a reuse of the standard layout.
	layout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Position Color Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{},
	})
	if err != nil {
		return nil, fmt.Errorf("position-color pipeline layout: %w", err)
	}
	defer layout.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Position Color Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &replaceBlend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive:   trianglePrimitive,
		Multisample: singleSample,
	})
	if err != nil {
		return nil, fmt.Errorf("position-color render pipeline: %w", err)
	}
	return pipeline, nil
}

// Shared fixed-function state for both pipelines.
var (
	replaceBlend = wgpu.BlendState{
		Color: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorZero,
			Operation: wgpu.BlendOperationAdd,
		},
		Alpha: wgpu.BlendComponent{
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorZero,
			Operation: wgpu.BlendOperationAdd,
		},
	}

	trianglePrimitive = wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	}

	singleSample = wgpu.MultisampleState{
		Count: 1,
		Mask:  0xFFFFFFFF,
	}
)
