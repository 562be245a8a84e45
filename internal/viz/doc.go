// Package viz is the terminal host for the grid.
//
//   - [Model]: bubbletea model that pans the grid with mouse drags and keys
//   - [Canvas]: braille canvas implementing paint.Surface
//   - Theme selection with 5 built-in color schemes for the chrome
//
// # Key Bindings
//
//	Drag    - Pan with the left mouse button
//	Arrows  - Nudge the grid (hjkl also work)
//	R       - Recenter the origin
//	T       - Cycle chrome themes
//	P       - Cycle grid palettes
//	?       - Toggle full help
//	Q       - Quit
//
// The canvas treats every cell as an 8x16 pixel block by default, so pan
// offsets and grid intervals are in the same units as the window hosts.
package viz
