package commands

// BuildFindings exports buildFindings for testing.
var BuildFindings = buildFindings //nolint:gochecknoglobals // test export

// FindLine exports findLine for testing.
var FindLine = findLine //nolint:gochecknoglobals // test export
