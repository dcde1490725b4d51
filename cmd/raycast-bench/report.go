package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/raycaster/engine"
)

type Report struct {
	// Configuration
	Session    string
	Duration   time.Duration
	Width      int
	Height     int
	PixelScale int
	Level      string
	Spin       bool

	// Results
	TotalFrames   int64
	TotalTime     time.Duration
	FrameTime     Stats
	RenderTime    Stats
	Systems       []engine.SystemStats
	Snapshot      string
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// FPS is the frame rate implied by the average frame time.
func (s Stats) FPS() float64 {
	if s.Avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.Avg)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Raycast Benchmark Report

## Configuration
- **Session:** {{.Session}}
- **Run Duration:** {{.Duration}}
- **Target:** {{.Width}}x{{.Height}} (pixel scale {{.PixelScale}})
- **Level:** {{.Level}}
- **Spin:** {{.Spin}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}} ({{printf "%.1f" .FrameTime.FPS}} FPS)
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
- **Software Render:**
  - **Avg:** {{.RenderTime.Avg}}
  - **Min:** {{.RenderTime.Min}}
  - **Max:** {{.RenderTime.Max}}

## Systems
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .Snapshot}}
## Snapshot
- {{.Snapshot}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
