// Package wgpubackend hosts the WebGPU presenter: device/adapter
// negotiation, the window surface, the precompiled pipelines and shape
// buffers, and the per-frame render pass.
package wgpubackend

import (
	"fmt"
	"log"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/cprohoda/learnwgpu/engine/assets"
	"github.com/cprohoda/learnwgpu/engine/colors"
	"github.com/cprohoda/learnwgpu/engine/core"
	"github.com/cprohoda/learnwgpu/engine/render"
)

// SurfaceSource is the part of the platform window the presenter needs.
// The surface borrows the window; teardown order (surface first) is the
// run loop's responsibility.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	FramebufferSize() (int, int)
}

// Presenter owns the GPU device and the presentable surface, and draws one
// frame per call from a FrameState. All methods must run on the thread
// that owns the event loop.
type Presenter struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	config   wgpu.SurfaceConfiguration

	geometry  *GeometryStore
	pipelines *PipelineSet
	diffuse   *Texture

	diffuseBindGroup *wgpu.BindGroup
	cameraBuffer     *wgpu.Buffer
	cameraBindGroup  *wgpu.BindGroup
}

// NewPresenter negotiates an adapter and device for the window surface and
// builds every startup-time GPU resource. Any failure here is fatal; the
// caller should abort with the returned error.
func NewPresenter(win SurfaceSource, cfg core.Config) (*Presenter, error) {
	p := &Presenter{}

	p.instance = wgpu.CreateInstance(nil)
	p.surface = p.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := p.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: p.surface,
	})
	if err != nil {
		p.Shutdown()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	p.adapter = adapter

	device, err := adapter.RequestDevice(nil)
	if err != nil {
		p.Shutdown()
		return nil, fmt.Errorf("request device: %w", err)
	}
	p.device = device
	p.queue = device.GetQueue()

	caps := p.surface.GetCapabilities(adapter)
	if len(caps.Formats) == 0 {
		p.Shutdown()
		return nil, fmt.Errorf("surface reports no formats")
	}

	w, h := win.FramebufferSize()
	presentMode := caps.PresentModes[0]
	if cfg.VSync {
		presentMode = wgpu.PresentModeFifo
	}
	p.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      pickSurfaceFormat(caps.Formats),
		Width:       uint32(w),
		Height:      uint32(h),
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],
	}
	p.surface.Configure(p.adapter, p.device, &p.config)
	log.Printf("webgpu: surface %dx%d format=%v present=%v", w, h, p.config.Format, presentMode)

	if err := p.buildResources(); err != nil {
		p.Shutdown()
		return nil, err
	}
	return p, nil
}

// buildResources creates the texture and camera bind groups, the shape
// buffers and both pipelines.
func (p *Presenter) buildResources() error {
	textureLayout, err := p.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "texture_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("texture bind group layout: %w", err)
	}
	defer textureLayout.Release()

	cameraLayout, err := p.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("camera bind group layout: %w", err)
	}
	defer cameraLayout.Release()

	p.diffuse, err = NewTextureFromPNG(p.device, p.queue, assets.DiffusePNG(), "diffuse")
	if err != nil {
		return err
	}
	p.diffuseBindGroup, err = p.diffuse.BindGroup(p.device, textureLayout, "diffuse_bind_group")
	if err != nil {
		return err
	}

	var identity [16]float32
	p.cameraBuffer, err = p.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Camera Buffer",
		Contents: wgpu.ToBytes(identity[:]),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("camera buffer: %w", err)
	}

	p.cameraBindGroup, err = p.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera_bind_group",
		Layout: cameraLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: p.cameraBuffer, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return fmt.Errorf("camera bind group: %w", err)
	}

	p.geometry, err = NewGeometryStore(p.device)
	if err != nil {
		return err
	}

	p.pipelines, err = NewPipelineSet(p.device, p.config.Format, textureLayout, cameraLayout)
	return err
}

// Resize reconfigures the surface for a new framebuffer size. A zero
// dimension leaves the current configuration untouched.
func (p *Presenter) Resize(w, h int) {
	if !applyResize(&p.config, w, h) {
		return
	}
	p.surface.Configure(p.adapter, p.device, &p.config)
}

// applyResize updates the stored configuration for a new size and reports
// whether a reconfigure is needed. Zero or negative dimensions never are.
func applyResize(config *wgpu.SurfaceConfiguration, w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	config.Width = uint32(w)
	config.Height = uint32(h)
	return true
}

// RenderFrame draws one frame from the current state: upload the camera
// matrix, acquire the surface texture, record a single clear+draw pass,
// submit, present. Transient acquisition failures are recovered here and
// the frame is skipped; the returned error is always fatal.
func (p *Presenter) RenderFrame(f *render.FrameState) error {
	vp := f.Camera.ViewProj()
	if err := p.queue.WriteBuffer(p.cameraBuffer, 0, wgpu.ToBytes(vp[:])); err != nil {
		return fmt.Errorf("camera upload: %w", err)
	}

	frame, err := p.surface.GetCurrentTexture()
	if err != nil {
		return p.recoverAcquire(err)
	}

	view, err := frame.CreateView(nil)
	if err != nil {
		return fmt.Errorf("frame view: %w", err)
	}
	defer view.Release()

	encoder, err := p.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Render Encoder",
	})
	if err != nil {
		return fmt.Errorf("command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Render Pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: toWGPUColor(f.Clear),
		}},
	})
	defer pass.Release()

	pass.SetPipeline(p.pipelines.Active(f.Mode))
	switch f.Mode {
	case render.ModePositionColor:
		// Bufferless pipeline: nothing to bind, fixed 3-vertex triangle.
		pass.Draw(3, 1, 0, 0)
	default:
		pass.SetBindGroup(0, p.diffuseBindGroup, nil)
		pass.SetBindGroup(1, p.cameraBindGroup, nil)
		vb, ib := p.geometry.Buffers()
		pass.SetVertexBuffer(0, vb, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(ib, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		dr := f.Shape.DrawRange()
		pass.DrawIndexed(dr.IndexCount, 1, dr.FirstIndex, dr.BaseVertex, 0)
	}
	pass.End()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	defer cmd.Release()

	p.queue.Submit(cmd)
	p.surface.Present()
	return nil
}

// recoverAcquire handles a failed surface acquisition per its class:
// timeouts are logged and skipped, stale surfaces are reconfigured at the
// current size, out-of-memory and anything unknown propagate as fatal.
func (p *Presenter) recoverAcquire(err error) error {
	switch ClassifySurfaceError(err) {
	case SurfaceErrorTimeout:
		log.Printf("webgpu: surface timeout, skipping frame")
		return nil
	case SurfaceErrorStale:
		p.Resize(int(p.config.Width), int(p.config.Height))
		return nil
	case SurfaceErrorOutOfMemory:
		return fmt.Errorf("surface acquisition out of memory: %w", err)
	default:
		return fmt.Errorf("surface acquisition: %w", err)
	}
}

func toWGPUColor(c colors.Color) wgpu.Color {
	return wgpu.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])}
}

// Shutdown releases device-owned resources, then the device, then the
// surface and instance. Runs before the window is destroyed.
func (p *Presenter) Shutdown() {
	if p.pipelines != nil {
		p.pipelines.Release()
		p.pipelines = nil
	}
	if p.geometry != nil {
		p.geometry.Release()
		p.geometry = nil
	}
	if p.cameraBindGroup != nil {
		p.cameraBindGroup.Release()
		p.cameraBindGroup = nil
	}
	if p.cameraBuffer != nil {
		p.cameraBuffer.Release()
		p.cameraBuffer = nil
	}
	if p.diffuseBindGroup != nil {
		p.diffuseBindGroup.Release()
		p.diffuseBindGroup = nil
	}
	if p.diffuse != nil {
		p.diffuse.Release()
		p.diffuse = nil
	}
	if p.device != nil {
		p.device.Release()
		p.device = nil
	}
	if p.adapter != nil {
		p.adapter.Release()
		p.adapter = nil
	}
	if p.surface != nil {
		p.surface.Release()
		p.surface = nil
	}
	if p.instance != nil {
		p.instance.Release()
		p.instance = nil
	}
}

// pickSurfaceFormat prefers an sRGB-capable surface format and otherwise
// takes the first one reported.
func pickSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGB(f) {
			return f
		}
	}
	return formats[0]
}

func isSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	default:
		return false
	}
}
