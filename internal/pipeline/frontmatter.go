package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-mdslice/internal/yamlutil"
)

// ErrFrontMatter indicates a front matter block was found but could not be decoded.
var ErrFrontMatter = errors.New("invalid front matter")

// yamlFrontMatter only recognizes "---" delimited YAML. The TOML and JSON
// formats enabled by default in adrg/frontmatter would treat a leading "{"
// or "+++" line of a plain document as metadata.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", decodeFrontMatter)

// StripFrontMatter removes a leading YAML front matter block.
// Content without front matter is returned unchanged with nil metadata.
func StripFrontMatter(content string) (string, map[string]any, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(content), &meta, yamlFrontMatter)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return string(body), meta, nil
}

// decodeFrontMatter tolerates an empty block ("---\n---").
func decodeFrontMatter(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return yamlutil.Unmarshal(data, v)
}
