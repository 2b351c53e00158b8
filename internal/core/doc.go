// Package core holds the device-independent building blocks of the frame
// loop: Q24.8 fixed-point math, 15-bit colors, the framebuffer canvas and
// its primitives, edge-detecting input and the LCG random source.
//
// It has no external dependencies so it builds unchanged for the desktop
// hosts and for TinyGo targets.
package core
