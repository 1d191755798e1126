package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/edp1096/cmna"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Underline(true)
)

func writeReport(w io.Writer, result *cmna.Result) {
	fmt.Fprintln(w, titleStyle.Render(result.Title))
	fmt.Fprintf(w, "Equations: %d\n\n", result.Equations)

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-12s %6s %14s", "Node", "Column", "Voltage")))
	for _, n := range result.Nodes {
		fmt.Fprintf(w, "%-12s %6d %14.6g\n", n.Name, n.Column, n.Voltage)
	}
}
