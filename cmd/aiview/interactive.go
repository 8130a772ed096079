package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/assimp"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	meshStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type nodeRow struct {
	node  *assimp.Node
	name  string
	depth int
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

type interactiveModel struct {
	err      error
	src      *source
	scene    *assimp.Scene
	filter   textinput.Model
	title    string
	rows     []nodeRow
	visible  []int
	flags    assimp.PostProcess
	selected int
	state    modelState
}

func newInteractiveModel(src *source, title string, flags assimp.PostProcess) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "node name"
	ti.Prompt = "filter: "
	ti.Width = 40
	return &interactiveModel{
		src:    src,
		title:  title,
		flags:  flags,
		filter: ti,
		state:  stateBrowse,
	}
}

type loadedMsg struct {
	err   error
	scene *assimp.Scene
	rows  []nodeRow
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadScene
}

func (m *interactiveModel) loadScene() tea.Msg {
	scene, err := m.src.importScene(m.flags)
	if err != nil {
		return loadedMsg{err: err}
	}
	var rows []nodeRow
	if root := scene.Root(); root != nil {
		root.Walk(func(n *assimp.Node, depth int) bool {
			rows = append(rows, nodeRow{node: n, name: n.Name(), depth: depth})
			return true
		})
	}
	return loadedMsg{scene: scene, rows: rows}
}

func (m *interactiveModel) applyFilter() {
	q := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, r := range m.rows {
		if q == "" || strings.Contains(strings.ToLower(r.name), q) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *interactiveModel) quit() (tea.Model, tea.Cmd) {
	if m.scene != nil {
		m.scene.Close()
		m.scene = nil
	}
	return m, tea.Quit
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "ctrl+c":
				return m.quit()
			case "enter", "esc":
				m.filter.Blur()
				m.state = stateBrowse
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m.quit()

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				return m, m.filter.Focus()
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.scene = msg.scene
		m.rows = msg.rows
		m.applyFilter()
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.scene == nil {
		return "Importing scene..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("aiview"))
	b.WriteString(" ")
	b.WriteString(m.title)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		for i, idx := range m.visible {
			r := m.rows[idx]
			line := strings.Repeat("  ", r.depth) + m.formatNode(r)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • q quit"))

	case stateDetail:
		r := m.rows[m.visible[m.selected]]
		b.WriteString(fmt.Sprintf("Node %s\n\n", nodeStyle.Render(r.name)))
		b.WriteString(detailStyle.Render(m.nodeDetail(r.node)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatNode(r nodeRow) string {
	name := r.name
	if name == "" {
		name = "(unnamed)"
	}
	s := nodeStyle.Render(name)
	if n := len(r.node.MeshIndices()); n > 0 {
		s += " " + meshStyle.Render(fmt.Sprintf("[%d meshes]", n))
	}
	return s
}

func (m *interactiveModel) nodeDetail(n *assimp.Node) string {
	var b strings.Builder
	t := n.GlobalTransformation()
	fmt.Fprintf(&b, "world position: (%.3g, %.3g, %.3g)\n", t.A4, t.B4, t.C4)
	fmt.Fprintf(&b, "children: %d\n", len(n.Children()))
	for _, mesh := range n.MeshesFrom(m.scene) {
		fmt.Fprintf(&b, "mesh %q: %d vertices, %d faces, %s\n",
			mesh.Name(), mesh.NumVertices(), mesh.NumFaces(), mesh.PrimitiveTypes())
		if box, ok := mesh.Bounds(); ok {
			size := box.Size()
			fmt.Fprintf(&b, "  local size: (%.3g, %.3g, %.3g)\n", size.X, size.Y, size.Z)
		}
		if bones := mesh.Bones(); len(bones) > 0 {
			fmt.Fprintf(&b, "  bones: %d\n", len(bones))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func runInteractive(src *source, title string, flags assimp.PostProcess) error {
	p := tea.NewProgram(newInteractiveModel(src, title, flags), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
