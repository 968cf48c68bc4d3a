package parser

import (
	"os"
	"path/filepath"
)

// ParseFile reads and parses an assembly source file, returning the
// laid-out Program or the first fatal error encountered.
func ParseFile(path string) (*Program, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, NewError(Position{Filename: path}, ErrorMissingInput, err.Error())
	}

	p := NewParser(string(content), filepath.Base(path))
	return p.Parse()
}
