package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mrdg/loopsynth/audio"
)

const stepsPerRow = 16

func renderStatus(w io.Writer, cfg audio.Config, st audio.Status, pattern [256]uint8) {
	seconds := float64(st.Elapsed) / cfg.SampleRate
	fmt.Fprintf(w, "%s %.1fs\n", colorize("time", colorBlue), seconds)

	gate := colorize("closed", colorRed)
	if st.Gate {
		gate = colorize("open", colorGreen)
	}
	fmt.Fprintf(w, "%s step %3d/%d  note %5.1f  gate %s\n",
		colorize("lead", colorBlue), st.LeadStep+1, len(pattern), st.LeadNote, gate)

	for row := 0; row < len(pattern); row += stepsPerRow {
		var cells []string
		for step := row; step < row+stepsPerRow; step++ {
			cell := "□"
			if pattern[step] > 0 {
				cell = "■"
			}
			if step == st.LeadStep {
				cell = colorize(cell, colorYellow)
			}
			cells = append(cells, cell)
		}
		fmt.Fprintf(w, "  %s %s\n", colorize(fmt.Sprintf("%3d", row+1), colorMagenta), strings.Join(cells, " "))
	}

	fmt.Fprintf(w, "%s step %3d/32   note %3d   root %d",
		colorize("bass", colorBlue), st.BassStep+1, st.BassNote, st.BassRoot+1)
}

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
)

func colorize(text string, color int) string {
	return fmt.Sprintf("\033[%dm%s\033[0m", color, text)
}
