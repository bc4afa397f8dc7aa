// Package pipeline holds the markdown text stages run before a document is
// split into sections:
//   - Line ending normalization
//   - Front matter stripping (adrg/frontmatter, YAML decoded via yamlutil)
//   - Code block detection via Goldmark, so fence-aware splitting can skip
//     header-looking lines inside fenced code and raw HTML blocks
//
// Splitting and materialization live in the root mdslice package. This
// package never touches the output directory.
package pipeline
