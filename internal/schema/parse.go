// Package schema parses and serializes the YAML-frontmatter markdown documents
// sfce installs for AI assistants.
package schema

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// splitFrontmatter separates a leading "---" block from the body. ok is false
// when content has no closed block.
func splitFrontmatter(content []byte) (header, body string, ok bool) {
	text := string(content)
	if !strings.HasPrefix(text, delimiter) {
		return "", text, false
	}

	rest := strings.TrimPrefix(text[len(delimiter):], "\n")
	header, after, found := strings.Cut(rest, "\n"+delimiter)
	if !found {
		return "", text, false
	}
	return header, strings.TrimLeft(after, "\r\n"), true
}

// ParseFrontmatterTyped decodes the frontmatter of content into target and
// returns the body. Content without frontmatter is returned unchanged as the
// body and target is left untouched.
func ParseFrontmatterTyped[T any](content []byte, target *T) (string, error) {
	header, body, ok := splitFrontmatter(content)
	if !ok {
		return body, nil
	}
	if err := yaml.Unmarshal([]byte(header), target); err != nil {
		return "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return body, nil
}

// HasFrontmatter reports whether content opens with a closed frontmatter block
func HasFrontmatter(content []byte) bool {
	_, _, ok := splitFrontmatter(content)
	return ok
}

// SerializeFrontmatter renders fm as a frontmatter block followed by a blank
// line and body.
func SerializeFrontmatter(fm any, body string) ([]byte, error) {
	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	buf.Write(header)
	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteByte('\n')
		buf.WriteString(body)
	}
	return buf.Bytes(), nil
}
