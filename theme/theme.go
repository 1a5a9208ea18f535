// Package theme holds the optional Lip Gloss styles applied to rendered
// menus. A nil *Styles (or any nil field) renders plain text, so the fixed
// column layout stays byte-identical for embedders that capture output.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable styles for the pieces of a rendered menu.
type Styles struct {
	Trigger     *lipgloss.Style
	Description *lipgloss.Style
	Message     *lipgloss.Style
}

var defaultStyles = Styles{
	Trigger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Message: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// RenderTrigger applies the trigger style when one is configured.
func (s *Styles) RenderTrigger(text string) string {
	return render(s.triggerStyle(), text)
}

// RenderDescription applies the description style when one is configured.
func (s *Styles) RenderDescription(text string) string {
	return render(s.descriptionStyle(), text)
}

// RenderMessage applies the message style when one is configured.
func (s *Styles) RenderMessage(text string) string {
	return render(s.messageStyle(), text)
}

func (s *Styles) triggerStyle() *lipgloss.Style {
	if s == nil {
		return nil
	}
	return s.Trigger
}

func (s *Styles) descriptionStyle() *lipgloss.Style {
	if s == nil {
		return nil
	}
	return s.Description
}

func (s *Styles) messageStyle() *lipgloss.Style {
	if s == nil {
		return nil
	}
	return s.Message
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
