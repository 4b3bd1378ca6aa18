package cargo

// ParseDeclaration exports parseDeclaration for testing.
var ParseDeclaration = parseDeclaration //nolint:gochecknoglobals // test export
