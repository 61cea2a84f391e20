package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	LabelFocusStyle   lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorStyle        lipgloss.Style
	TagStyle          lipgloss.Style
	TagPrimaryStyle   lipgloss.Style
	TagSecondaryStyle lipgloss.Style
	KeyStyle          lipgloss.Style
}

// ActivityFormStyles returns the modal styles needed for the activity form.
func (s ModalStyleSet) ActivityFormStyles() ActivityFormStyles {
	return ActivityFormStyles{
		BodyStyle:         s.BodyStyle,
		LabelStyle:        s.LabelStyle,
		LabelFocusStyle:   s.LabelFocusStyle,
		HintStyle:         s.HintStyle,
		ErrorStyle:        s.ErrorStyle,
		TagStyle:          s.TagStyle,
		TagPrimaryStyle:   s.TagPrimaryStyle,
		TagSecondaryStyle: s.TagSecondaryStyle,
	}
}

// ConfirmDeleteStyles returns the modal styles needed for delete confirmation.
func (s ModalStyleSet) ConfirmDeleteStyles() ConfirmDeleteStyles {
	return ConfirmDeleteStyles{
		BodyStyle: s.BodyStyle,
		HintStyle: s.HintStyle,
	}
}

// HelpStyles returns the modal styles needed for the help modal.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		BodyStyle:         s.BodyStyle,
		KeyStyle:          s.KeyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
	}
}
