// Package analysis measures how much a frame draws as the grid pans.
//
//   - [PanSweep]: render frames at evenly spaced offsets along one axis
//   - [SweepResult.Series]: one metric per frame, ready for plotting
//   - [Summarize]: min, max and mean of a series
//
// A sweep over a full tick period shows the label count stepping as labels
// enter and leave the viewport while the grid line count stays within one
// of its bound:
//
//	res, err := analysis.PanSweep(analysis.SweepConfig{
//	    Axis: cartesian.AxisX, From: 0, To: 250, Steps: 51,
//	    Width: 1280, Height: 720, Interval: 50, Style: paint.DefaultStyle(),
//	}, paint.Monospace{})
package analysis
