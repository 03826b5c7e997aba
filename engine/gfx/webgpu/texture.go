package wgpubackend

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/cprohoda/learnwgpu/engine/assets"
)

// Texture bundles a sampled 2D texture with its view and sampler, exposed
// to shaders as one bind group.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler
}

// NewTextureFromPNG decodes PNG bytes and uploads them as an sRGB RGBA8
// texture.
func NewTextureFromPNG(device *wgpu.Device, queue *wgpu.Queue, data []byte, label string) (*Texture, error) {
	w, h, pixels, err := assets.DecodePNG(data)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", label, err)
	}

	size := wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1}
	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         label,
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", label, err)
	}

	err = queue.WriteTexture(
		tex.AsImageCopy(),
		pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(4 * w),
			RowsPerImage: uint32(h),
		},
		&size,
	)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("texture %q upload: %w", label, err)
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("texture %q view: %w", label, err)
	}

	sampler, err := device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         label,
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		Compare:       wgpu.CompareFunctionUndefined,
		MaxAnisotropy: 1,
	})
	if err != nil {
		view.Release()
		tex.Release()
		return nil, fmt.Errorf("texture %q sampler: %w", label, err)
	}

	return &Texture{texture: tex, view: view, sampler: sampler}, nil
}

// BindGroup builds the texture+sampler bind group against the given layout.
func (t *Texture) BindGroup(device *wgpu.Device, layout *wgpu.BindGroupLayout, label string) (*wgpu.BindGroup, error) {
	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label,
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: t.view},
			{Binding: 1, Sampler: t.sampler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("bind group %q: %w", label, err)
	}
	return bg, nil
}

func (t *Texture) Release() {
	if t.sampler != nil {
		t.sampler.Release()
		t.sampler = nil
	}
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}
