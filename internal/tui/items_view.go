package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	listCardWidth = 60
	cardTextLines = 4
	todoTextWidth = 48
)

// gridColumns is the number of cards that fit in width.
func gridColumns(width int) int {
	if width <= 0 {
		return 3
	}
	cols := width / (cardWidth + 4)
	if cols < 1 {
		return 1
	}
	return cols
}

// renderCard draws a notes mode card.
func renderCard(item models.Item, today time.Time, selected bool, width int) string {
	var lines []string

	title := strings.TrimSpace(item.Title)
	if item.IsPinned {
		title = "[pinned] " + title
	}
	if strings.TrimSpace(title) != "" {
		lines = append(lines, titleStyle.Render(fitText(title, width-4)))
	}

	if text := strings.TrimSpace(item.Text); text != "" {
		textLines := strings.Split(text, "\n")
		if len(textLines) > cardTextLines {
			textLines = append(textLines[:cardTextLines], "…")
		}
		for _, l := range textLines {
			lines = append(lines, fitText(l, width-4))
		}
	}

	if deadline := view.FormatDeadline(item); deadline != "" {
		urgency := view.ClassifyUrgency(item, today)
		lines = append(lines, urgencyStyles[urgency].Render("Due "+deadline))
	}

	if item.Completed {
		lines = append(lines, "[done]")
	}

	color := item.Color
	if !view.IsPaletteColor(color) {
		color = view.DefaultColor
	}

	return styleForCard(view.StyleOf(item, today), color, selected).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func renderGrid(items []models.Item, today time.Time, selected, cols int) string {
	rows := make([]string, 0, len(items)/cols+1)
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))

		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(items[i], today, i == selected, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCardList(items []models.Item, today time.Time, selected int) string {
	cards := make([]string, 0, len(items))
	for i, item := range items {
		cards = append(cards, renderCard(item, today, i == selected, listCardWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderTodoRow draws a todo mode row: checkbox, text and deadline.
func renderTodoRow(item models.Item, today time.Time, selected bool) string {
	check := "[ ]"
	if item.Completed {
		check = "[x]"
	}

	text := strings.TrimSpace(firstLine(item.Text))
	if text == "" {
		text = strings.TrimSpace(item.Title)
	}
	text = fitText(text, todoTextWidth)
	if item.Completed {
		text = helpStyle.Strikethrough(true).Render(text)
	}

	row := fmt.Sprintf("%s %s", check, text)
	if item.IsPinned {
		row += " *"
	}
	if deadline := view.FormatDeadline(item); deadline != "" {
		row += "  " + urgencyStyles[view.ClassifyUrgency(item, today)].Render(deadline)
	}

	if selected {
		return "> " + selectedStyle.Render(row)
	}
	return "  " + row
}

func renderTodoList(items []models.Item, today time.Time, selected int) string {
	rows := make([]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, renderTodoRow(item, today, i == selected))
	}
	return strings.Join(rows, "\n")
}

// renderToolbar shows the current view configuration and the progress.
func renderToolbar(cfg models.ViewConfig, items []models.Item, todo bool) string {
	done, total := view.Progress(items)

	parts := []string{
		"Filter: " + string(cfg.FilterMode),
		"Sort: " + string(cfg.SortOrder),
	}
	if !todo {
		parts = append(parts, "View: "+string(cfg.DisplayMode))
	}
	if cfg.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", cfg.SearchQuery))
	}
	parts = append(parts, fmt.Sprintf("Done %d/%d", done, total))

	return joinHelp(parts...)
}
