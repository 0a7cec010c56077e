// Package groups renders the group picker and, for owners, the member
// picker that drives the perspective switch.
package groups

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rakesh-arrepu/HHH-sub000/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	ownerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Mode switches the component between the group list and the member list.
type Mode int

const (
	ModeGroups Mode = iota
	ModeMembers
)

// Model is the groups view.
type Model struct {
	groups    []models.Group
	members   []models.Member
	activeID  int // currently selected group
	viewedID  int // currently viewed member (0 = self)
	cursor    int
	mode      Mode
	selfID    int
}

func New() Model {
	return Model{}
}

// SetGroups replaces the group list.
func (m *Model) SetGroups(groups []models.Group, activeID int) {
	m.groups = groups
	m.activeID = activeID
	m.mode = ModeGroups
	if m.cursor >= len(groups) {
		m.cursor = 0
	}
}

// SetMembers replaces the member list and switches to member mode.
func (m *Model) SetMembers(members []models.Member, selfID, viewedID int) {
	m.members = members
	m.selfID = selfID
	m.viewedID = viewedID
	m.mode = ModeMembers
	m.cursor = 0
}

// BackToGroups leaves member mode.
func (m *Model) BackToGroups() {
	m.mode = ModeGroups
	m.cursor = 0
}

// Mode returns the active mode.
func (m Model) Mode() Mode {
	return m.mode
}

func (m *Model) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) MoveDown() {
	limit := len(m.groups)
	if m.mode == ModeMembers {
		limit = len(m.members)
	}
	if m.cursor < limit-1 {
		m.cursor++
	}
}

// SelectedGroup returns the group under the cursor.
func (m Model) SelectedGroup() (models.Group, bool) {
	if m.mode != ModeGroups || m.cursor >= len(m.groups) {
		return models.Group{}, false
	}
	return m.groups[m.cursor], true
}

// SelectedMember returns the member under the cursor.
func (m Model) SelectedMember() (models.Member, bool) {
	if m.mode != ModeMembers || m.cursor >= len(m.members) {
		return models.Member{}, false
	}
	return m.members[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder

	if m.mode == ModeMembers {
		b.WriteString(titleStyle.Render("Members") + "\n\n")
		for i, member := range m.members {
			marker := "  "
			line := fmt.Sprintf("%s <%s>", member.Name, member.Email)
			if member.UserID == m.selfID {
				line += " (you)"
			}
			if member.UserID == m.viewedID {
				line += " [viewing]"
			}
			if i == m.cursor {
				marker = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(marker + line + "\n")
		}
		b.WriteString("\n" + hintStyle.Render("enter: view member (read-only) · s: view yourself · esc: back"))
		return b.String()
	}

	b.WriteString(titleStyle.Render("Groups") + "\n\n")
	if len(m.groups) == 0 {
		b.WriteString(hintStyle.Render("No groups yet. Create one with 'hhh groups create'."))
		return b.String()
	}
	for i, group := range m.groups {
		marker := "  "
		line := group.Name
		if group.IsOwner {
			line += " " + ownerStyle.Render("(owner)")
		}
		if group.ID == m.activeID {
			line += " [active]"
		}
		if i == m.cursor {
			marker = "> "
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("enter: switch group · m: members (owners)"))
	return b.String()
}
