// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ReflectVertexShader transforms meshes that sample the skybox
// (tram body and door leaves).
//
//go:embed reflect.vert
var ReflectVertexShader string

// ReflectFragmentShader mirrors the skybox off the surface. Used for doors.
//
//go:embed reflect.frag
var ReflectFragmentShader string

// RefractFragmentShader bends the skybox through the surface. Used for the tram body.
//
//go:embed refract.frag
var RefractFragmentShader string

// ColorVertexShader is the vertex shader for per-vertex colored geometry.
//
//go:embed color.vert
var ColorVertexShader string

// ColorFragmentShader is the fragment shader for per-vertex colored geometry.
//
//go:embed color.frag
var ColorFragmentShader string

// BuildingVertexShader adds a per-instance offset to each vertex.
//
//go:embed building.vert
var BuildingVertexShader string

// SkyboxVertexShader is the vertex shader for the cubemap background.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader is the fragment shader for the cubemap background.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
