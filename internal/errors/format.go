package errors

import "strings"

// Format renders the error as a multi-line human-readable report.
func (e *WaymarkError) Format() string {
	var b strings.Builder

	b.WriteString("ERROR")
	if e.Code != "" {
		b.WriteString(" ")
		b.WriteString(e.Code)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("\n  ")
		b.WriteString(e.Detail)
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		b.WriteString("\n  suggestion: ")
		b.WriteString(e.Suggestion)
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		b.WriteString("\n  caused by: ")
		b.WriteString(e.Wrapped.Error())
		b.WriteString("\n")
	}

	if e.DocURL != "" {
		b.WriteString("\n  docs: ")
		b.WriteString(e.DocURL)
		b.WriteString("\n")
	}

	return b.String()
}
