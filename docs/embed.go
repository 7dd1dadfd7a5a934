// Package docs bundles the long-form guide shipped with the ubiq binary.
package docs

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

// FS contains the guide topics as Markdown files.
//
//go:embed guide
var FS embed.FS

// Topics lists the guide topic names, sorted.
func Topics() ([]string, error) {
	entries, err := fs.ReadDir(FS, "guide")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			topics = append(topics, strings.TrimSuffix(e.Name(), ".md"))
		}
	}
	sort.Strings(topics)
	return topics, nil
}

// Topic returns the Markdown source of one guide topic.
func Topic(name string) ([]byte, error) {
	return FS.ReadFile("guide/" + name + ".md")
}
