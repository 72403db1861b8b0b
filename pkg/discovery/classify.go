package discovery

import (
	"os"
	"path/filepath"
)

type marker struct {
	name string
	typ  ProjectType
}

// markerTable maps marker file names to project types.
// Order here determines precedence when a directory contains more than
// one marker: the first match wins.
var markerTable = []marker{
	{"Cargo.toml", TypeRust},
	{"package.json", TypeJavaScript},
	{"tsconfig.json", TypeTypeScript},
	{"deno.json", TypeTypeScript},
	{"requirements.txt", TypePython},
	{"setup.py", TypePython},
	{"pyproject.toml", TypePython},
	{"Pipfile", TypePython},
	{"go.mod", TypeGo},
	{"pom.xml", TypeJava},
	{"build.gradle", TypeJava},
	{"build.gradle.kts", TypeJava},
	{".csproj", TypeCSharp},
	{".sln", TypeCSharp},
	{"CMakeLists.txt", TypeCpp},
	{"Makefile", TypeCpp},
	{"Gemfile", TypeRuby},
	{"composer.json", TypePHP},
	{".git", TypeGit},
}

// Classify inspects the immediate entries of path and returns the
// project type of the first marker present, in table order. A file or
// a directory of the marker name both count. Returns TypeUnclassified
// when no marker is found. Classify never errors and never recurses.
func Classify(path string) ProjectType {
	for _, m := range markerTable {
		if _, err := os.Stat(filepath.Join(path, m.name)); err == nil {
			return m.typ
		}
	}
	return TypeUnclassified
}

// IsProject reports whether path classifies to some project type.
func IsProject(path string) bool {
	return Classify(path) != TypeUnclassified
}
