// Package ui renders svnmanifest's terminal output: plan tables, ignore
// file previews, messages and errors.
//
// Output is either colored or plain. FormatAuto picks colored output only
// when the writer is a terminal with color support and NO_COLOR is unset.
// Styles are defined in the embedded styles.yaml using adaptive
// light/dark colors, and referenced by semantic name:
//
//	r.Style("Error").Render("something broke")
package ui
