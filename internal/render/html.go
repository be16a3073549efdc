package render

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements end a line in the plain-text rendering
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "table": true, "ul": true, "ol": true, "hr": true,
}

// StripTags returns the text content of an HTML fragment
func StripTags(fragment string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// HasText reports whether an HTML fragment contains any non-whitespace text
func HasText(fragment string) bool {
	return strings.TrimSpace(StripTags(fragment)) != ""
}

// ToPlainText renders an HTML fragment as readable plain text. Block elements
// become line breaks and links keep their target in angle brackets.
func ToPlainText(fragment string) string {
	var b strings.Builder
	var href string
	skip := 0

	z := html.NewTokenizer(strings.NewReader(fragment))
loop:
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			break loop
		case html.TextToken:
			if skip > 0 {
				continue
			}
			b.WriteString(collapseSpace(string(z.Text())))
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			switch tag {
			case "style", "script", "head":
				if tt == html.StartTagToken {
					skip++
				} else if tt == html.EndTagToken && skip > 0 {
					skip--
				}
				continue
			case "a":
				if tt == html.StartTagToken {
					href = ""
					for hasAttr {
						var k, v []byte
						k, v, hasAttr = z.TagAttr()
						if string(k) == "href" {
							href = string(v)
						}
					}
				} else if tt == html.EndTagToken && href != "" && !strings.HasPrefix(href, "mailto:") {
					b.WriteString(" <" + href + ">")
					href = ""
				}
				continue
			}
			if blockElements[tag] && (tt != html.StartTagToken || tag == "br" || tag == "hr") {
				b.WriteString("\n")
			}
		}
	}
	return tidyLines(b.String())
}

// AppendSignature appends the signature HTML to the body, if there is one
func AppendSignature(body, signature string) string {
	if strings.TrimSpace(signature) == "" {
		return body
	}
	return body + "\n<br>\n" + signature
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\r\n") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\r\n") != s {
		out += " "
	}
	return out
}

// tidyLines trims each line and collapses runs of blank lines to one
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, l)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
