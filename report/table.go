package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hostdiag/disktemp/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
)

// cellPadding is the space added on each side of every cell.
const cellPadding = 2

// Render lays the records out as an aligned table, rows in discovery
// order. Each column is as wide as its widest cell. Failed rows carry
// their diagnostic message in the TEMP column.
func Render(records []model.DeviceRecord) string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"DEVICE", "VENDOR", "MODEL", "TEMP", "STATUS"})
	for _, r := range records {
		rows = append(rows, recordRow(r))
	}

	// Widths are measured on the unstyled text so ANSI sequences never
	// skew the alignment.
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for col, cell := range row {
			if w := lipgloss.Width(cell); w > widths[col] {
				widths[col] = w
			}
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		for col, cell := range row {
			styled := styleCell(cell, i == 0, col == len(row)-1)
			sb.WriteString(strings.Repeat(" ", cellPadding))
			sb.WriteString(styled)
			sb.WriteString(strings.Repeat(" ", widths[col]-lipgloss.Width(cell)+cellPadding))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func recordRow(r model.DeviceRecord) []string {
	if r.Status == model.StatusFailed {
		return []string{r.Path, "Failed", "Failed", r.Err, string(r.Status)}
	}
	return []string{r.Path, r.Vendor, r.Model, formatTemp(r.TemperatureC), string(r.Status)}
}

func formatTemp(t *int) string {
	if t == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d°C", *t)
}

func styleCell(cell string, header, status bool) string {
	switch {
	case header:
		return headerStyle.Render(cell)
	case status && cell == string(model.StatusOK):
		return okStyle.Render(cell)
	case status && cell == string(model.StatusFailed):
		return failStyle.Render(cell)
	default:
		return cell
	}
}
