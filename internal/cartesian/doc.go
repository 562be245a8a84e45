// Package cartesian generates the geometry of an infinite, pannable Cartesian
// backdrop: grid lines, the two axes with arrowheads, and integer tick labels.
//
// Everything is recomputed from a [Viewport] and a grid interval on every frame:
//
//   - [Pan]: accumulated drag offset, the only state that survives a frame
//   - [Grid]: vertical and horizontal lines, every 5th one from the origin major
//   - [Axes]: X and Y axes through the panned origin
//   - [Ticks]: labels every 5 grid steps, clamped to stay on screen
//   - [Render]: validates inputs and composes all of the above into a [Frame]
//
// # Example
//
//	pan := cartesian.NewPan(400, 300)
//	pan.ApplyDelta(-12, 40)
//	frame, err := cartesian.Render(pan.Viewport(), 50)
//
// Screen coordinates are used throughout: x grows to the right, y grows downward.
// Every sweep is bounded by viewport_extent/interval steps regardless of the offset.
//
// # Thread Safety
//
// [Render] is a pure function and safe to call concurrently. [Pan] is not
// synchronized; mutate and read it from the goroutine that draws.
package cartesian
