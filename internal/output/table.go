package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	cellPad  = 2
	maxCell  = 40
	ellipsis = "..."
)

// table monta colunas alinhadas; as larguras consideram o texto já estilizado
type table struct {
	headers []string
	rows    [][]string
	right   map[int]bool
}

func newTable(headers ...string) *table {
	return &table{headers: headers, right: make(map[int]bool)}
}

// alignRight alinha à direita as colunas numéricas
func (t *table) alignRight(cols ...int) *table {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

func (t *table) add(cells ...string) {
	for i, cell := range cells {
		cells[i] = truncate(cell, maxCell)
	}
	t.rows = append(t.rows, cells)
}

func (t *table) String() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder
	header := make([]string, len(t.headers))
	for i, h := range t.headers {
		header[i] = t.pad(h, widths[i], i)
	}
	sb.WriteString(headerStyle.Render(strings.TrimRight(strings.Join(header, ""), " ")))
	sb.WriteString("\n")

	for _, row := range t.rows {
		line := make([]string, len(row))
		for i, cell := range row {
			if i < len(widths) {
				line[i] = t.pad(cell, widths[i], i)
			}
		}
		sb.WriteString(strings.TrimRight(strings.Join(line, ""), " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (t *table) pad(cell string, width, col int) string {
	gap := strings.Repeat(" ", max(width-lipgloss.Width(cell), 0))
	if t.right[col] {
		return gap + cell + strings.Repeat(" ", cellPad)
	}
	return cell + gap + strings.Repeat(" ", cellPad)
}

// truncate só corta texto sem estilo; células coloridas passam inteiras
func truncate(s string, limit int) string {
	if strings.Contains(s, "\x1b[") {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}

func dash(s string) string {
	if s == "" {
		return dimStyle.Render("--")
	}
	return s
}

func heading(title string, parts ...string) string {
	line := titleStyle.Render(title)
	if len(parts) > 0 {
		line += " " + dimStyle.Render(strings.Join(parts, " · "))
	}
	return line + "\n"
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
