package render

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta holds the front matter fields shown in the header.
type Meta struct {
	Title string   `yaml:"title" toml:"title"`
	Tags  []string `yaml:"tags" toml:"tags"`
}

// FrontMatter extracts Meta from a leading YAML or TOML block. Sources
// without front matter, or with a block that fails to decode, yield a zero
// Meta.
func FrontMatter(src string) Meta {
	var meta Meta
	if _, err := frontmatter.Parse(strings.NewReader(src), &meta); err != nil {
		return Meta{}
	}
	meta.Title = strings.TrimSpace(meta.Title)
	return meta
}
