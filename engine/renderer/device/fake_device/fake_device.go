// Package fake_device provides an in-memory device.Device that records calls, for tests.
package fake_device

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/renderer/device"
)

// Attribute records one EnableVertexAttribute call.
type Attribute struct {
	Location     uint32
	Size, Stride int32
	Offset       int32
}

// Draw records one DrawTriangles call along with the program and MVP bound at the time.
type Draw struct {
	Program     uint32
	First       int32
	Count       int32
	MVP         [16]float32
	MVPUploaded bool
}

// Device is a recording device.Device. Set the Fail* fields to force compile or link failures.
type Device struct {
	FailStage   map[device.ShaderStage]string // stage -> info log
	FailLink    string                        // non-empty makes LinkProgram fail
	Uniforms    map[string]int32              // uniform name -> location; missing names return -1
	Attributes  map[string]int32              // attribute name -> location; missing names return -1
	nextHandle  uint32
	bound       uint32
	mvp         [16]float32
	mvpUploaded bool

	Compiled            []device.ShaderStage
	DeletedShaders      []uint32
	DeletedPrograms     []uint32
	Linked              [][]uint32
	Buffers             [][]float32
	BufferHandles       []uint32
	DeletedBuffers      []uint32
	VertexArrays        []uint32
	DeletedVertexArrays []uint32
	AttributesSet       []Attribute
	Draws               []Draw
	Clears              int
	DepthTest           bool
	ViewportSize        [2]int32
	UniformUploads      int
}

var _ device.Device = &Device{}

// New creates a fake device that knows the "MVP" uniform and the "vertexPosition_modelspace"
// and "vertexColor" attributes.
func New() *Device {
	return &Device{
		FailStage: map[device.ShaderStage]string{},
		Uniforms:  map[string]int32{"MVP": 0},
		Attributes: map[string]int32{
			"vertexPosition_modelspace": 0,
			"vertexColor":               1,
		},
	}
}

func (d *Device) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *Device) CompileShader(stage device.ShaderStage, _ string) (uint32, string, bool) {
	d.Compiled = append(d.Compiled, stage)
	h := d.handle()
	if log, ok := d.FailStage[stage]; ok {
		return h, log, false
	}
	return h, "", true
}

func (d *Device) DeleteShader(shader uint32) {
	d.DeletedShaders = append(d.DeletedShaders, shader)
}

func (d *Device) LinkProgram(shaders ...uint32) (uint32, string, bool) {
	d.Linked = append(d.Linked, shaders)
	h := d.handle()
	if d.FailLink != "" {
		return h, d.FailLink, false
	}
	return h, "", true
}

func (d *Device) DeleteProgram(program uint32) {
	d.DeletedPrograms = append(d.DeletedPrograms, program)
}

func (d *Device) UseProgram(program uint32) {
	d.bound = program
}

// BoundProgram returns the program passed to the last UseProgram call.
func (d *Device) BoundProgram() uint32 {
	return d.bound
}

func (d *Device) UniformLocation(_ uint32, name string) int32 {
	if loc, ok := d.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) AttribLocation(_ uint32, name string) int32 {
	if loc, ok := d.Attributes[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) UniformMatrix4(_ int32, m [16]float32) {
	d.mvp = m
	d.mvpUploaded = true
	d.UniformUploads++
}

func (d *Device) CreateVertexArray() uint32 {
	h := d.handle()
	d.VertexArrays = append(d.VertexArrays, h)
	return h
}

func (d *Device) BindVertexArray(uint32) {}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.DeletedVertexArrays = append(d.DeletedVertexArrays, vao)
}

func (d *Device) CreateStaticBuffer(data []float32) uint32 {
	h := d.handle()
	d.Buffers = append(d.Buffers, append([]float32(nil), data...))
	d.BufferHandles = append(d.BufferHandles, h)
	return h
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.DeletedBuffers = append(d.DeletedBuffers, buffer)
}

func (d *Device) EnableVertexAttribute(location uint32, size, stride, offset int32) {
	d.AttributesSet = append(d.AttributesSet, Attribute{Location: location, Size: size, Stride: stride, Offset: offset})
}

func (d *Device) DrawTriangles(first, count int32) {
	d.Draws = append(d.Draws, Draw{
		Program:     d.bound,
		First:       first,
		Count:       count,
		MVP:         d.mvp,
		MVPUploaded: d.mvpUploaded,
	})
	d.mvpUploaded = false
}

func (d *Device) Clear(_, _, _, _ float32, _ bool) {
	d.Clears++
}

func (d *Device) EnableDepthTest() {
	d.DepthTest = true
}

func (d *Device) Viewport(width, height int32) {
	d.ViewportSize = [2]int32{width, height}
}

func (d *Device) Version() string {
	return "fake 4.1"
}
