package model

// SeverityError is the only severity tier: a JSON parse failure is always
// fatal for the document.
const SeverityError = "error"

// ClassSyntax marks diagnostics produced from parse failures so an editor
// surface can style them distinctly.
const ClassSyntax = "syntax-error"

// Diagnostic is a reported problem with a source span, intended for inline
// display in an editing surface. From and To are byte offsets into the
// checked document satisfying 0 <= From <= To <= len(document).
type Diagnostic struct {
	From     int
	To       int
	Severity string
	Message  string
	Class    string
}
