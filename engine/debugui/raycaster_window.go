package debugui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"

	"github.com/plus3/raycaster/engine"
)

// FPSPlotMax is the fixed upper bound of the FPS plot.
const FPSPlotMax = 4000

// RaycasterStats is the per-frame data shown by RaycasterWindow.
type RaycasterStats struct {
	FPS         float32
	FPSHistory  []float32
	FrameMillis []float32
	MaxMillis   float32

	PlayerX, PlayerY float64
	Angle            float64

	LookOK       bool
	LookTile     uint8
	LookCell     [2]int
	LookDistance float64

	SeenCells int
	OpenCells int
}

// RaycasterWindow draws the main debug window.
type RaycasterWindow struct {
	Scheduler *engine.Scheduler
	Renderer  string
}

// MillisLimit returns the y-axis limit for the frame time plot: the history
// max with 10% headroom, never below 1ms.
func MillisLimit(maxMillis float32) float64 {
	limit := float64(maxMillis) * 1.1
	if limit < 1 || math.IsNaN(limit) {
		return 1
	}
	return limit
}

// Coverage returns the percentage of open cells seen so far.
func (s RaycasterStats) Coverage() float64 {
	if s.OpenCells == 0 {
		return 0
	}
	return 100 * float64(s.SeenCells) / float64(s.OpenCells)
}

func (w *RaycasterWindow) Render(stats RaycasterStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 520), imgui.CondOnce)

	if !imgui.BeginV("Debug", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("FPS: %.1f", stats.FPS))
	imgui.Text(fmt.Sprintf("Player: (%.2f, %.2f)", stats.PlayerX, stats.PlayerY))
	imgui.Text(fmt.Sprintf("Angle: %.3f rad (%.1f deg)", stats.Angle, stats.Angle*180/math.Pi))
	if w.Renderer != "" {
		imgui.Text("Renderer: " + w.Renderer)
	}

	if stats.LookOK {
		imgui.Text(fmt.Sprintf("Looking at: tile %d at (%d, %d), %.2f away",
			stats.LookTile, stats.LookCell[0], stats.LookCell[1], stats.LookDistance))
	} else {
		imgui.Text("Looking at: nothing")
	}
	imgui.Text(fmt.Sprintf("Explored: %d / %d cells (%.0f%%)", stats.SeenCells, stats.OpenCells, stats.Coverage()))

	if len(stats.FPSHistory) > 0 {
		imgui.Separator()
		if implot.BeginPlotV("FPS", imgui.NewVec2(-1, 150), 0) {
			implot.SetupAxesV("Sample", "FPS", 0, 0)
			implot.SetupAxisLimitsV(implot.AxisY1, 0, FPSPlotMax, implot.CondAlways)
			implot.PlotLineFloatPtrInt("FPS", &stats.FPSHistory[0], int32(len(stats.FPSHistory)))
			implot.EndPlot()
		}
	}

	if len(stats.FrameMillis) > 0 {
		if implot.BeginPlotV("Frame time", imgui.NewVec2(-1, 150), 0) {
			implot.SetupAxesV("Sample", "ms", 0, 0)
			implot.SetupAxisLimitsV(implot.AxisY1, 0, MillisLimit(stats.MaxMillis), implot.CondAlways)
			implot.PlotLineFloatPtrInt("ms", &stats.FrameMillis[0], int32(len(stats.FrameMillis)))
			implot.EndPlot()
		}
	}

	if w.Scheduler != nil && imgui.TreeNodeStr("Systems") {
		w.renderSystems()
		imgui.TreePop()
	}

	imgui.End()
}

func (w *RaycasterWindow) renderSystems() {
	stats := w.Scheduler.GetStats()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, sys := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(sys.Name)
		imgui.TableNextColumn()
		imgui.Text(sys.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(sys.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(sys.MaxDuration.String())
	}
	imgui.EndTable()
}
