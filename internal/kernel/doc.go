// Package kernel is a small boundary-representation kernel for floor slabs.
//
// It only knows vertical prisms: solids with one upward cap, one downward
// cap, and lateral faces swept from the profile curves. That covers
// every solid the in-memory host produces for floors and is enough to
// extrude profiles, subtract prisms and measure volumes.
package kernel
