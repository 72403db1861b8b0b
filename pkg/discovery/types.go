package discovery

// ProjectType identifies the technology of a discovered project.
// The set is closed; a directory that matches no marker is
// TypeUnclassified.
type ProjectType string

const (
	TypeUnclassified ProjectType = ""
	TypeRust         ProjectType = "rust"
	TypeJavaScript   ProjectType = "javascript"
	TypeTypeScript   ProjectType = "typescript"
	TypePython       ProjectType = "python"
	TypeGo           ProjectType = "go"
	TypeJava         ProjectType = "java"
	TypeCSharp       ProjectType = "csharp"
	TypeCpp          ProjectType = "cpp"
	TypeRuby         ProjectType = "ruby"
	TypePHP          ProjectType = "php"
	TypeGit          ProjectType = "git"
)

// Display returns the human-readable name of the project type.
func (t ProjectType) Display() string {
	switch t {
	case TypeRust:
		return "Rust"
	case TypeJavaScript:
		return "JavaScript"
	case TypeTypeScript:
		return "TypeScript"
	case TypePython:
		return "Python"
	case TypeGo:
		return "Go"
	case TypeJava:
		return "Java"
	case TypeCSharp:
		return "C#"
	case TypeCpp:
		return "C/C++"
	case TypeRuby:
		return "Ruby"
	case TypePHP:
		return "PHP"
	case TypeGit:
		return "Git Repo"
	}
	return "Unknown"
}

// FoundProject represents a directory reported by Scan.
// Name is always the final component of Path; Path is absolute.
type FoundProject struct {
	Name string
	Path string
	Type ProjectType
}

// DisplayName returns "name (type)" for selection lists.
func (p FoundProject) DisplayName() string {
	return p.Name + " (" + p.Type.Display() + ")"
}

// DirectoryMatch represents a directory found by SearchByName.
type DirectoryMatch struct {
	Name string
	Path string
}

// FilterMode controls which directories Scan reports at the target depth.
type FilterMode int

const (
	// FilterAuto reports only directories that classify to a project type.
	FilterAuto FilterMode = iota
	// FilterAll reports every non-excluded directory at the target depth.
	FilterAll
)

// ParseFilterMode maps a CLI filter string to a FilterMode.
func ParseFilterMode(s string) (FilterMode, bool) {
	switch s {
	case "auto":
		return FilterAuto, true
	case "all":
		return FilterAll, true
	}
	return FilterAuto, false
}
