//go:build !opencl

package main

import (
	"errors"

	"warpfield/internal/starfield"
)

type openCLDepthAdvancer struct{}

func newOpenCLDepthAdvancer() (*openCLDepthAdvancer, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (a *openCLDepthAdvancer) Advance([]starfield.Star, float64) error {
	return errors.New("OpenCL advancer unavailable")
}

func (a *openCLDepthAdvancer) Close() {}

func (a *openCLDepthAdvancer) DeviceName() string { return "" }
