package summarizer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

var (
	codeFence     = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*\\n?(.*?)\\n?```$")
	looksLikeHTML = regexp.MustCompile(`(?i)<(h[1-6]|p|ul|ol|li|div|strong|b|table|section|br)\b`)
	unsafeTags    = "script, style, iframe, object, embed, link, meta, base, form, frame, frameset"
)

// FormatSummary normalises a model reply into HTML that the landing page can inject directly.
// Fenced replies are unwrapped, Markdown replies are rendered and active content is removed.
func FormatSummary(raw string) (string, error) {
	body := strings.TrimSpace(raw)
	if m := codeFence.FindStringSubmatch(body); m != nil {
		body = strings.TrimSpace(m[1])
	}
	if body == "" {
		return "", nil
	}
	if !looksLikeHTML.MatchString(body) {
		body = renderMarkdown(body)
	}
	return sanitizeHTML(body)
}

func renderMarkdown(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return strings.TrimSpace(string(markdown.ToHTML([]byte(md), p, renderer)))
}

func sanitizeHTML(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	doc.Find(unsafeTags).Remove()
	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		kept := node.Attr[:0]
		for _, attr := range node.Attr {
			key := strings.ToLower(attr.Key)
			if strings.HasPrefix(key, "on") {
				continue
			}
			if (key == "href" || key == "src" || key == "action" || key == "formaction") && unsafeURL(attr.Val) {
				continue
			}
			kept = append(kept, attr)
		}
		node.Attr = kept
	})

	// a full <html> reply keeps only its body
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func unsafeURL(val string) bool {
	v := strings.ToLower(strings.Join(strings.Fields(val), ""))
	return strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "vbscript:") || strings.HasPrefix(v, "data:text/html")
}
