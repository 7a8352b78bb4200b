package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var palette = []color.Color{color.FgRed, color.FgYellow, color.FgGreen, color.FgCyan}

type RendererOptions struct {
	Delimiter string
	Color     bool
	Marks     []entity.Mark
}

// Renderer draws the board top row first, with the column numbers
// underneath.
type Renderer struct {
	out       io.Writer
	delimiter string
	width     int
	colors    map[entity.Mark]color.Color
}

func NewRenderer(out io.Writer, opts RendererOptions) *Renderer {
	width := 1
	for _, mark := range opts.Marks {
		width = max(width, utf8.RuneCountInString(mark.String()))
	}

	renderer := &Renderer{
		out:       out,
		delimiter: opts.Delimiter,
		width:     width,
	}

	if opts.Color {
		renderer.colors = make(map[entity.Mark]color.Color, len(opts.Marks))
		for i, mark := range opts.Marks {
			renderer.colors[mark] = palette[i%len(palette)]
		}
	}

	return renderer
}

func (that *Renderer) Render(board entity.Board) error {
	var sb strings.Builder

	sb.WriteString("\n")

	for row := entity.Rows - 1; row >= 0; row-- {
		sb.WriteString(that.delimiter)
		for col := 0; col < entity.Columns; col++ {
			sb.WriteString(that.cell(board.Cells[col][row]))
			sb.WriteString(that.delimiter)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(that.footer())
	sb.WriteString("\n")

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	return nil
}

func (that *Renderer) Announce(text string) error {
	if _, err := fmt.Fprintln(that.out, text); err != nil {
		return fmt.Errorf("failed to write announcement: %w", err)
	}

	return nil
}

func (that *Renderer) cell(mark entity.Mark) string {
	text := that.pad(mark.String())

	if c, ok := that.colors[mark]; ok && mark != entity.Empty {
		return c.Sprint(text)
	}

	return text
}

func (that *Renderer) footer() string {
	var sb strings.Builder

	gap := strings.Repeat(" ", utf8.RuneCountInString(that.delimiter))

	sb.WriteString(gap)
	for col := 1; col <= entity.Columns; col++ {
		sb.WriteString(that.pad(strconv.Itoa(col)))
		sb.WriteString(gap)
	}

	return strings.TrimRight(sb.String(), " ")
}

func (that *Renderer) pad(text string) string {
	missing := that.width - utf8.RuneCountInString(text)
	if missing <= 0 {
		return text
	}

	return text + strings.Repeat(" ", missing)
}
