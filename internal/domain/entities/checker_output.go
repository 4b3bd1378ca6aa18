package entities

// CheckerOutput holds the raw streams captured from the staleness checker.
// Stderr being non-empty is the only failure signal the run command looks at.
type CheckerOutput struct {
	Stdout []byte
	Stderr []byte
}

// Failed reports whether the checker wrote anything to stderr.
func (o CheckerOutput) Failed() bool {
	return len(o.Stderr) > 0
}
