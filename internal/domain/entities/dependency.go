package entities

// DeclaredPackage is a dependency declared in the manifest's [dependencies] section.
type DeclaredPackage struct {
	Name    string // Name as written before the '=' delimiter
	Version string // Version with surrounding quotes stripped
	Line    int    // 0-based line index in the manifest
}
