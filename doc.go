// Package rend is a thin real-time 3D renderer on top of OpenGL 4.1 core
// and GLFW.
//
// It maps a handful of high level calls to the underlying API:
//
//	window, err := rend.NewWindow("Example", 1280, 720)
//	...
//	ctx, err := rend.NewContext()
//	mesh, err := rend.NewMesh(geom.Triangles, vertices, nil)
//	for !window.ShouldClose() {
//		window.HandleEvents(func(rend.Event) {})
//		rend.Clear()
//		mesh.Render()
//		window.SwapBuffers()
//	}
//
// OpenGL contexts belong to a single OS thread. Programs using rend must
// call runtime.LockOSThread from an init function of package main and make
// every rend call from the main goroutine.
package rend
