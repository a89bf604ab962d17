// Package templates holds the documents sfce writes into a project: the
// constitution, the spec/plan/tasks templates, the shell helpers and the
// assistant workflow document.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"

	"github.com/sfce-dev/sfce/internal/artifact"
)

//go:embed files
var files embed.FS

const workflowSource = "workflow.md"

// Document is one built-in file written by init
type Document struct {
	// Path is relative to the control directory, e.g. "memory/constitution.md"
	Path string
	// Source is the embedded file name under files/
	Source string
	// Executable documents get mode 0755 after writing
	Executable bool
}

var documents = []Document{
	{Path: path.Join(artifact.MemoryDirName, artifact.ConstitutionFilename), Source: "constitution.md"},
	{Path: path.Join(artifact.TemplatesDirName, "spec-template.md"), Source: "spec-template.md"},
	{Path: path.Join(artifact.TemplatesDirName, "plan-template.md"), Source: "plan-template.md"},
	{Path: path.Join(artifact.TemplatesDirName, "tasks-template.md"), Source: "tasks-template.md"},
	{Path: path.Join(artifact.ScriptsDirName, "common.sh"), Source: "common.sh", Executable: true},
	{Path: path.Join(artifact.ScriptsDirName, "check-prerequisites.sh"), Source: "check-prerequisites.sh", Executable: true},
	{Path: path.Join(artifact.ScriptsDirName, "create-new-feature.sh"), Source: "create-new-feature.sh", Executable: true},
	{Path: path.Join(artifact.ScriptsDirName, "list-specs.sh"), Source: "list-specs.sh", Executable: true},
}

// Documents returns the built-in documents in write order.
func Documents() []Document {
	out := make([]Document, len(documents))
	copy(out, documents)
	return out
}

// Content returns the normalized document body: surrounding whitespace
// trimmed and exactly one trailing newline.
func Content(d Document) ([]byte, error) {
	return load(d.Source)
}

// Workflow returns the workflow overview written for an assistant.
func Workflow() ([]byte, error) {
	return load(workflowSource)
}

// FeatureFile pairs a template in the templates directory with the name it
// takes inside a feature folder.
type FeatureFile struct {
	Template string // e.g. "spec-template.md"
	Name     string // e.g. "spec.md"
}

// FeatureFiles returns the templates copied into a new feature folder.
func FeatureFiles() []FeatureFile {
	return []FeatureFile{
		{Template: "spec-template.md", Name: "spec.md"},
		{Template: "plan-template.md", Name: "plan.md"},
		{Template: "tasks-template.md", Name: "tasks.md"},
	}
}

func load(name string) ([]byte, error) {
	data, err := files.ReadFile(path.Join("files", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in %s: %w", name, err)
	}
	return append(bytes.TrimSpace(data), '\n'), nil
}
