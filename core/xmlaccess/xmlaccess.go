// ABOUTME: Namespace-tolerant element and attribute access over parsed XML documents
// ABOUTME: Resolves logical selectors across bare, prefixed and local-name-only element forms

package xmlaccess

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"podcheck-api/core/errors"
)

// parserOptions disables strict decoding: feeds with an undeclared
// namespace prefix must still parse so the selector fallback tiers can
// reach them.
var parserOptions = xmlquery.ParserOptions{
	Decoder: &xmlquery.DecoderOptions{Strict: false},
}

// ParseDocument parses raw feed bytes into a queryable document.
// Feeds in the wild occasionally embed stray control characters; when
// the first parse fails those are stripped and parsing is retried once.
// Returns a ParseError when the text is not XML at all.
func ParseDocument(data []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.ParseWithOptions(bytes.NewReader(data), parserOptions)
	if err == nil {
		if !hasElement(doc) {
			return nil, &errors.ParseError{Format: "XML", Message: "document contains no elements"}
		}
		return doc, nil
	}

	cleaned := stripControlChars(data)
	doc, retryErr := xmlquery.ParseWithOptions(bytes.NewReader(cleaned), parserOptions)
	if retryErr == nil && hasElement(doc) {
		return doc, nil
	}

	return nil, &errors.ParseError{Format: "XML", Message: err.Error()}
}

// hasElement reports whether the document has any element node at all.
// The decoder happily accepts plain text, so a successful parse alone
// does not mean the input was XML.
func hasElement(doc *xmlquery.Node) bool {
	for child := doc.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}

// stripControlChars removes non-whitespace control bytes that break XML parsers
func stripControlChars(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' {
			continue
		}
		if b == 0x7F {
			continue
		}
		out = append(out, b)
	}
	return out
}

// TextOf returns the trimmed text content of the first element matching
// the logical selector beneath node, or the empty string when nothing
// matches. It is total: it never fails, whatever the selector.
func TextOf(node *xmlquery.Node, selector string) string {
	if el := find(node, selector); el != nil {
		return strings.TrimSpace(el.InnerText())
	}
	return ""
}

// AttrOf returns the named attribute of the first element matching the
// logical selector beneath node, or the empty string when nothing
// matches.
func AttrOf(node *xmlquery.Node, selector, attr string) string {
	if el := find(node, selector); el != nil {
		return el.SelectAttr(attr)
	}
	return ""
}

// NodesOf returns all elements matched by the first selector candidate
// that yields any, preserving document order.
func NodesOf(node *xmlquery.Node, selector string) []*xmlquery.Node {
	if node == nil {
		return nil
	}
	for _, expr := range candidates(selector) {
		nodes, err := xmlquery.QueryAll(node, expr)
		if err != nil {
			continue
		}
		if len(nodes) > 0 {
			return nodes
		}
	}
	return nil
}

// find resolves a logical selector to a single element, trying each
// candidate form in order. First match wins.
func find(node *xmlquery.Node, selector string) *xmlquery.Node {
	if node == nil {
		return nil
	}
	for _, expr := range candidates(selector) {
		el, err := xmlquery.Query(node, expr)
		if err != nil {
			continue
		}
		if el != nil {
			return el
		}
	}
	return nil
}

// candidates expands a logical selector into the XPath forms tried
// against inconsistently-namespaced documents, in preference order:
//
//  1. the selector exactly as given (spec-correct prefixed form)
//  2. namespace prefixes stripped (feeds that omit the prefix)
//  3. a full-name match on the prefixed form (prefix present but not
//     bound to a declared namespace)
//  4. a namespace-agnostic local-name match
//
// Spec-correct matches are preferred; loose structural matches are a
// last resort. Selectors use '/' for child steps, e.g.
// "itunes:owner/itunes:email".
func candidates(selector string) []string {
	axis := ""
	if strings.HasPrefix(selector, "//") {
		axis = "//"
		selector = selector[2:]
	}
	segments := strings.Split(selector, "/")

	stripped := make([]string, len(segments))
	byName := make([]string, len(segments))
	byLocal := make([]string, len(segments))
	prefixed := false

	for i, seg := range segments {
		local := seg
		if idx := strings.Index(seg, ":"); idx >= 0 {
			prefixed = true
			local = seg[idx+1:]
		}
		stripped[i] = local
		byName[i] = fmt.Sprintf("*[name()='%s']", seg)
		byLocal[i] = fmt.Sprintf("*[local-name()='%s']", local)
	}

	exprs := []string{axis + selector}
	if prefixed {
		exprs = append(exprs,
			axis+strings.Join(stripped, "/"),
			axis+strings.Join(byName, "/"),
		)
	}
	exprs = append(exprs, axis+strings.Join(byLocal, "/"))
	return exprs
}
