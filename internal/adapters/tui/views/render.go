package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"bookkeeper/internal/adapters/tui/styles"
	"bookkeeper/internal/application/commands"
	"bookkeeper/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderPath renders the labels from the top-level category down to node
func RenderPath(node *domain.Node) string {
	if node == nil {
		return ""
	}
	return strings.Join(node.Path(), commands.PathSeparator)
}

// RenderNode renders one tree row: indent, expand marker, key and label
func RenderNode(node *domain.Node, selected bool) string {
	depth := node.Depth()
	indent := strings.Repeat("  ", depth)

	var prefix string
	switch {
	case len(node.Children) == 0:
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	label := node.Label
	if selected {
		label = styles.NodeSelected.Render(label)
	} else {
		style := lipgloss.NewStyle().Foreground(styles.DepthColor(depth))
		if depth == 0 {
			style = styles.NodeTop.Foreground(styles.DepthColor(depth))
		}
		label = style.Render(label)
	}

	return fmt.Sprintf("%s%s%s %s",
		indent,
		styles.TreeBranch.Render(prefix),
		styles.NodeKey.Render(node.ID.String()),
		label,
	)
}

// RenderStatus renders the bottom status bar for the editor
func RenderStatus(count int, dirty bool, page, pages int) string {
	var b strings.Builder
	if dirty {
		b.WriteString(styles.StatusDirty.Render("modified"))
	}
	status := fmt.Sprintf("%d categories", count)
	if pages > 1 {
		status += fmt.Sprintf("  page %d/%d", page, pages)
	}
	b.WriteString(styles.StatusBar.Render(status))
	return b.String()
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle section
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(styles.Subtitle.Render(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
