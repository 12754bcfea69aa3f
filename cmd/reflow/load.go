package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/pagemill/reflow/model"
)

// loadBlocks turns a file into content blocks: HTML files are parsed
// structurally, anything else is read as blank-line-separated paragraphs.
func loadBlocks(path string) ([]model.Block, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return loadHTML(path)
	default:
		return loadText(path)
	}
}

func loadText(path string) ([]model.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	var blocks []model.Block
	for _, para := range strings.Split(text, "\n\n") {
		collapsed := collapseWhitespace(para)
		if collapsed == "" {
			continue
		}
		blocks = append(blocks, model.NewParagraph(collapsed))
	}
	return blocks, nil
}

func loadHTML(path string) ([]model.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	l := &htmlLoader{base: filepath.Dir(path)}
	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	l.walk(body, 0)
	return l.blocks, nil
}

type htmlLoader struct {
	base   string
	blocks []model.Block
}

func (l *htmlLoader) walk(n *html.Node, listDepth int) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "nav":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if text := collapseWhitespace(textContent(n)); text != "" {
				l.blocks = append(l.blocks, model.NewHeading(int(n.Data[1]-'0'), text))
			}
			return
		case "p":
			if text := collapseWhitespace(textContent(n)); text != "" {
				l.blocks = append(l.blocks, model.NewParagraph(text))
			}
			l.walkImages(n)
			return
		case "blockquote":
			if text := collapseWhitespace(textContent(n)); text != "" {
				l.blocks = append(l.blocks, model.NewQuote(text))
			}
			return
		case "li":
			if text := collapseWhitespace(shallowText(n)); text != "" {
				l.blocks = append(l.blocks, model.NewNestedListItem(text, listDepth))
			}
			// Nested lists inside the item keep their own depth.
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "ul" || c.Data == "ol") {
					l.walk(c, listDepth)
				}
			}
			return
		case "ul", "ol":
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				l.walk(c, listDepth+1)
			}
			return
		case "img":
			l.loadImage(n)
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.walk(c, listDepth)
	}
}

// loadImage decodes an image referenced by a local src attribute. Remote
// or undecodable images are skipped: the demo has no fetcher.
func (l *htmlLoader) loadImage(n *html.Node) {
	src := attr(n, "src")
	if src == "" || strings.Contains(src, "://") {
		return
	}
	data, err := os.ReadFile(filepath.Join(l.base, src))
	if err != nil {
		return
	}
	img, err := model.NewImage(data)
	if err != nil {
		return
	}
	l.blocks = append(l.blocks, img)
}

// walkImages picks up images nested inside a text container after its
// text has been taken as one block.
func (l *htmlLoader) walkImages(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "img" {
			l.loadImage(c)
			continue
		}
		l.walkImages(c)
	}
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// textContent concatenates all text beneath a node.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// shallowText concatenates text beneath a node, skipping nested lists so
// a list item's text excludes its children's items.
func shallowText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol") {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(shallowText(c))
	}
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
