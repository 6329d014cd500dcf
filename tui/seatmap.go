package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"seatgrid-cli/model"
)

type seatCell struct {
	label  string
	status model.SeatStatus
	gap    bool
}

var (
	sectionNameStyle = lipgloss.NewStyle().Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2"))
	bookedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle      = lipgloss.NewStyle().Reverse(true).Bold(true)
	notifStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")).Padding(0, 1)
)

func (m appModel) renderSeatMap() string {
	layout := m.theater.Layout
	seats := m.seats.Seats()
	if layout == nil || len(seats) == 0 {
		return "No seating data."
	}

	var b strings.Builder
	maxGridWidth := 0
	for si, section := range layout.Sections {
		width := m.renderSection(&b, si, &section, seats)
		if width > maxGridWidth {
			maxGridWidth = width
		}
		b.WriteString("\n")
	}

	screen := screenBarBlock(maxGridWidth, "SCREEN")
	b.WriteString(screenBorderStyle().Render(screen.top) + "\n")
	b.WriteString(screenFaceStyle().Render(screen.mid) + "\n")
	b.WriteString(screenBorderStyle().Render(screen.bot) + "\n")
	b.WriteString(hint("Front / Screen") + "\n\n")

	b.WriteString(m.legendView(layout) + "\n")

	if msg := m.notifier.Message(); msg != "" {
		b.WriteString("\n" + notifStyle.Render(msg) + "\n")
	}
	return b.String()
}

// renderSection writes one section grid and returns its rendered cell width
// so the screen bar can span the widest section.
func (m appModel) renderSection(b *strings.Builder, sectionIdx int, section *model.Section, seats map[string]model.Seat) int {
	seatType := m.theater.Layout.SeatTypes[section.SeatType]
	title := sectionNameStyle.Render(section.Name)
	if seatType.Price > 0 {
		title += hint(fmt.Sprintf("  %d per seat", seatType.Price))
	}
	b.WriteString(title + "\n")

	grid := make([][]seatCell, section.Rows)
	cellWidth := 2
	for r := 0; r < section.Rows; r++ {
		grid[r] = make([]seatCell, section.Cols)
		for c := 0; c < section.Cols; c++ {
			seat, ok := seats[model.SeatKey(section.ID, r, c)]
			if !ok || seat.IsGap() {
				grid[r][c] = seatCell{gap: true}
				continue
			}
			grid[r][c] = seatCell{label: seat.DisplayLabel, status: seat.Status}
			if m.showSeatNumbers && len(seat.DisplayLabel) > cellWidth {
				cellWidth = len(seat.DisplayLabel)
			}
		}
	}

	availableStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(seatType.Color))
	rowWidth := 2
	for r := 0; r < section.Rows; r++ {
		letter := fmt.Sprintf("%c", rune('A'+section.Rows-1-r))
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, letter))
		for c := 0; c < section.Cols; c++ {
			cell := grid[r][c]
			text := cellText(cell, m.showSeatNumbers)
			rendered := padCell(text, cellWidth)
			switch {
			case sectionIdx == m.cursor.section && r == m.cursor.row && c == m.cursor.col:
				// cursor stays visible even while resting on a gap
				rendered = cursorStyle.Render(rendered)
			case cell.gap:
				// blank placeholder, never styled
			case cell.status == model.StatusSelected:
				rendered = selectedStyle.Render(rendered)
			case cell.status == model.StatusBooked:
				rendered = bookedStyle.Render(rendered)
			default:
				rendered = availableStyle.Render(rendered)
			}
			b.WriteString(rendered)
			if c < section.Cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, letter))
	}

	return section.Cols*(cellWidth+1) - 1 + rowWidth + 1
}

func cellText(cell seatCell, showNumbers bool) string {
	if cell.gap {
		return ""
	}
	if showNumbers {
		return cell.label
	}
	if cell.status == model.StatusBooked {
		return "XX"
	}
	// selected and available share the token; style tells them apart
	return "[]"
}

func (m appModel) legendView(layout *model.Layout) string {
	names := make([]string, 0, len(layout.SeatTypes))
	for name := range layout.SeatTypes {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		seatType := layout.SeatTypes[name]
		if seatType.Price == 0 {
			continue
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(seatType.Color)).Render("[]")
		parts = append(parts, fmt.Sprintf("%s %s %d", swatch, name, seatType.Price))
	}
	status := hint("green selected • grey booked • blank no seat")
	return strings.Join(parts, "  ") + "\n" + status
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

func screenFaceStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
}

func screenBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("236"))
}
