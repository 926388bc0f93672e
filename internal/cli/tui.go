package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/framegraph/pkg/frame"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailPaneStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse frames and follow references interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.readModel()
			if err != nil {
				return err
			}
			if g.IsEmpty() {
				c.printInfo("No frames in %s", c.modelPath())
				return nil
			}
			_, err = tea.NewProgram(NewFrameListModel(g), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// =============================================================================
// FrameListModel - Interactive frame browser
// =============================================================================

// frameRow is a snapshot of one frame, taken when the browser starts.
type frameRow struct {
	Name     string
	Label    string
	Position frame.Position
	Slots    []slotRow
}

type slotRow struct {
	Text   string
	Target string // target frame name; empty for literals
}

// FrameListModel is the bubbletea model for the frame browser. The left pane
// lists frames, the right pane shows the selected frame's slots. Enter on a
// reference slot jumps to its target.
type FrameListModel struct {
	Frames []frameRow
	Cursor int
	Slot   int
	Height int
	Offset int
}

// NewFrameListModel snapshots g into a browser model.
func NewFrameListModel(g *frame.Graph) FrameListModel {
	var rows []frameRow
	for _, p := range g.Frames() {
		row := frameRow{Name: p.Frame.Name(), Label: p.Frame.DisplayLabel(), Position: p.Position}
		for _, s := range p.Frame.Slots() {
			sr := slotRow{Text: frame.FormatSlot(s)}
			if t, ok := g.Target(s.Value); ok {
				sr.Target = t.Name()
			}
			row.Slots = append(row.Slots, sr)
		}
		rows = append(rows, row)
	}
	return FrameListModel{Frames: rows, Height: 15}
}

func (m FrameListModel) Init() tea.Cmd {
	return nil
}

func (m FrameListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.selectFrame(m.Cursor - 1)
			}
		case "down", "j":
			if m.Cursor < len(m.Frames)-1 {
				m.selectFrame(m.Cursor + 1)
			}
		case "left", "h", "shift+tab":
			if m.Slot > 0 {
				m.Slot--
			}
		case "right", "l", "tab":
			if m.Slot < len(m.current().Slots)-1 {
				m.Slot++
			}
		case "enter":
			m.follow()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

func (m *FrameListModel) current() frameRow {
	if len(m.Frames) == 0 {
		return frameRow{}
	}
	return m.Frames[m.Cursor]
}

func (m *FrameListModel) selectFrame(i int) {
	m.Cursor = i
	m.Slot = 0
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *FrameListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// follow moves the cursor to the target of the selected reference slot.
func (m *FrameListModel) follow() {
	slots := m.current().Slots
	if m.Slot >= len(slots) || slots[m.Slot].Target == "" {
		return
	}
	target := slots[m.Slot].Target
	for i, f := range m.Frames {
		if f.Name == target {
			m.selectFrame(i)
			return
		}
	}
}

func (m FrameListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Frames"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ frame  ←/→ slot  ⏎ follow reference  q quit"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.detailView()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Frames))))

	return b.String()
}

func (m FrameListModel) listView() string {
	end := min(m.Offset+m.Height, len(m.Frames))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		f := m.Frames[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, f.Name, fmt.Sprintf("(%d, %d)", f.Position.X, f.Position.Y)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Frame", "Position").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 2 {
				return listDimStyle
			}
			return listNormalStyle
		}).
		Render()
}

func (m FrameListModel) detailView() string {
	f := m.current()

	var b strings.Builder
	b.WriteString(StyleTitle.Render(f.Label))
	if len(f.Slots) == 0 {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("no slots"))
	}
	for i, s := range f.Slots {
		b.WriteString("\n")
		line := s.Text
		style := StyleValue
		if s.Target != "" {
			line += " " + iconArrow
			style = StyleReference
		}
		if i == m.Slot {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(style.Render("  " + line))
		}
	}
	return detailPaneStyle.Render(b.String())
}
