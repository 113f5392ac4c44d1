//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"warpfield/internal/starfield"
)

// openCLDepthAdvancer moves star depths on an OpenCL device. Depth and speed
// are uploaded as float32 each step and the new depths read back.
type openCLDepthAdvancer struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	depthBuf   *cl.MemObject
	speedBuf   *cl.MemObject
	capacity   int
	depths     []float32
	speeds     []float32
	deviceName string
}

const depthKernelSource = `__kernel void advance_depth(
    const int count,
    const float step,
    __global float* depth,
    __global const float* speed)
{
    int idx = get_global_id(0);
    if (idx >= count) {
        return;
    }
    depth[idx] -= step * speed[idx];
}`

func newOpenCLDepthAdvancer() (*openCLDepthAdvancer, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	a := &openCLDepthAdvancer{context: context, deviceName: device.Name()}
	a.queue, err = context.CreateCommandQueue(device, 0)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	a.program, err = context.CreateProgramWithSource([]string{depthKernelSource})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := a.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		a.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	a.kernel, err = a.program.CreateKernel("advance_depth")
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	return a, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// ensureCapacity grows the device buffers to hold n stars. Pools are rebuilt
// on resize, so buffers only grow.
func (a *openCLDepthAdvancer) ensureCapacity(n int) error {
	if n <= a.capacity {
		a.depths = a.depths[:n]
		a.speeds = a.speeds[:n]
		return nil
	}
	a.releaseBuffers()
	byteSize := n * int(unsafe.Sizeof(float32(0)))
	var err error
	if a.depthBuf, err = a.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize); err != nil {
		return fmt.Errorf("allocating depth buffer: %w", err)
	}
	if a.speedBuf, err = a.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize); err != nil {
		a.releaseBuffers()
		return fmt.Errorf("allocating speed buffer: %w", err)
	}
	if err := a.kernel.SetArgBuffer(2, a.depthBuf); err != nil {
		a.releaseBuffers()
		return fmt.Errorf("binding depth buffer: %w", err)
	}
	if err := a.kernel.SetArgBuffer(3, a.speedBuf); err != nil {
		a.releaseBuffers()
		return fmt.Errorf("binding speed buffer: %w", err)
	}
	a.capacity = n
	a.depths = make([]float32, n)
	a.speeds = make([]float32, n)
	return nil
}

// Advance implements starfield.Advancer.
func (a *openCLDepthAdvancer) Advance(stars []starfield.Star, step float64) error {
	n := len(stars)
	if n == 0 {
		return nil
	}
	if a.kernel == nil {
		return errors.New("OpenCL advancer closed")
	}
	if err := a.ensureCapacity(n); err != nil {
		return err
	}
	for i := range stars {
		a.depths[i] = float32(stars[i].Z)
		a.speeds[i] = float32(stars[i].Speed)
	}
	if _, err := a.queue.EnqueueWriteBufferFloat32(a.depthBuf, false, 0, a.depths, nil); err != nil {
		return fmt.Errorf("writing depth buffer: %w", err)
	}
	if _, err := a.queue.EnqueueWriteBufferFloat32(a.speedBuf, false, 0, a.speeds, nil); err != nil {
		return fmt.Errorf("writing speed buffer: %w", err)
	}
	if err := a.kernel.SetArgInt32(0, int32(n)); err != nil {
		return fmt.Errorf("setting star count: %w", err)
	}
	if err := a.kernel.SetArgFloat32(1, float32(step)); err != nil {
		return fmt.Errorf("setting step: %w", err)
	}
	if _, err := a.queue.EnqueueNDRangeKernel(a.kernel, nil, []int{n}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := a.queue.EnqueueReadBufferFloat32(a.depthBuf, true, 0, a.depths, nil); err != nil {
		return fmt.Errorf("reading depth buffer: %w", err)
	}
	for i := range stars {
		stars[i].Z = float64(a.depths[i])
	}
	return nil
}

func (a *openCLDepthAdvancer) releaseBuffers() {
	if a.depthBuf != nil {
		a.depthBuf.Release()
		a.depthBuf = nil
	}
	if a.speedBuf != nil {
		a.speedBuf.Release()
		a.speedBuf = nil
	}
	a.capacity = 0
}

func (a *openCLDepthAdvancer) Close() {
	a.releaseBuffers()
	if a.kernel != nil {
		a.kernel.Release()
		a.kernel = nil
	}
	if a.program != nil {
		a.program.Release()
		a.program = nil
	}
	if a.queue != nil {
		a.queue.Release()
		a.queue = nil
	}
	if a.context != nil {
		a.context.Release()
		a.context = nil
	}
}

func (a *openCLDepthAdvancer) DeviceName() string {
	return a.deviceName
}
