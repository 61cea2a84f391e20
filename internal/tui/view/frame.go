// Package view renders the pieces of the dayplan screen: header, activity
// list, timeline, footer with the command prompt, and modals.
package view

import "github.com/charmbracelet/lipgloss"

// Frame is one screen of the planner.
type Frame struct {
	Width       int
	Height      int
	Body        string         // header, list or timeline, and footer
	Modal       string         // rendered modal box; empty when none is open
	ModalBg     lipgloss.Color // fill behind the modal box
	Placeholder string         // shown until the terminal size is known
}

// String composes the frame, drawing the modal over the body when one is open.
func (f Frame) String() string {
	if f.Width <= 0 || f.Height <= 0 {
		return f.Placeholder
	}
	if f.Modal == "" {
		return f.Body
	}
	return Overlay(f.Body, f.Modal, f.Width, f.Height, f.ModalBg)
}
