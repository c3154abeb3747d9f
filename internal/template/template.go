// Package template renders the CppUnit fixture skeleton.
//
// The skeleton carries two bracketed placeholders. Both are replaced in a
// single pass, so text coming from one argument is never rescanned for the
// other placeholder.
package template

import (
	_ "embed"
	"regexp"
	"strings"

	"addtest/internal/domain"
)

const (
	// ClassPlaceholder marks every spot the class name goes
	ClassPlaceholder = "{{ClassName}}"
	// TestPlaceholder marks every spot the first test name goes
	TestPlaceholder = "{{TestName}}"

	// FilePrefix and FileExtension frame the class name in the output file name
	FilePrefix    = "Test"
	FileExtension = ".cpp"
)

// CppUnit is the fixture skeleton
//
//go:embed cppunit.cpp.tmpl
var CppUnit string

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Renderer substitutes fixture names into a template
type Renderer struct {
	template string
}

// NewRenderer creates a Renderer for the CppUnit skeleton
func NewRenderer() *Renderer {
	return &Renderer{template: CppUnit}
}

// Render returns the template with every placeholder replaced
func (r *Renderer) Render(fixture domain.Fixture) string {
	replacer := strings.NewReplacer(
		ClassPlaceholder, fixture.ClassName,
		TestPlaceholder, fixture.TestName,
	)
	return replacer.Replace(r.template)
}

// FileName returns the name of the file generated for a class
func FileName(className string) string {
	return FilePrefix + className + FileExtension
}

// IsIdentifier reports whether name can be spliced into C++ as an identifier
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}
