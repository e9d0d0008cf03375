// ABOUTME: Artwork extraction ladder over remote feed documents
// ABOUTME: Tries item-level art first, then channel art, then any episode's art

package resolve

import (
	"net/url"
	"strings"

	"github.com/antchfx/xmlquery"

	"podcheck-api/core/domain"
	feedpkg "podcheck-api/core/feed"
	"podcheck-api/core/xmlaccess"
)

// findItemByGUID locates the item whose guid text matches, comparing
// trimmed values.
func findItemByGUID(doc *xmlquery.Node, itemGuid string) *xmlquery.Node {
	if itemGuid == "" {
		return nil
	}
	for _, item := range xmlaccess.NodesOf(doc, "//item") {
		if xmlaccess.TextOf(item, "guid") == strings.TrimSpace(itemGuid) {
			return item
		}
	}
	return nil
}

// itemArtwork extracts artwork from a single item, preferring explicit
// episode art over incidental image attachments:
// itunes:image, then an image-typed enclosure, then media elements.
func itemArtwork(item *xmlquery.Node) string {
	if href := xmlaccess.AttrOf(item, "itunes:image", "href"); href != "" {
		return href
	}

	for _, enclosure := range xmlaccess.NodesOf(item, "enclosure") {
		if strings.HasPrefix(enclosure.SelectAttr("type"), "image/") {
			if u := enclosure.SelectAttr("url"); u != "" {
				return u
			}
		}
	}

	for _, media := range xmlaccess.NodesOf(item, "media:content") {
		isImage := media.SelectAttr("medium") == "image" ||
			strings.HasPrefix(media.SelectAttr("type"), "image/")
		if isImage {
			if u := media.SelectAttr("url"); u != "" {
				return u
			}
		}
	}
	if u := xmlaccess.AttrOf(item, "media:thumbnail", "url"); u != "" {
		return u
	}

	return ""
}

// channelArtwork extracts channel-level artwork, preferring itunes art.
func channelArtwork(channel *xmlquery.Node) string {
	if href := xmlaccess.AttrOf(channel, "itunes:image", "href"); href != "" {
		return href
	}
	return xmlaccess.TextOf(channel, "image/url")
}

// anyItemArtwork returns the first artwork found on any item, as a last
// resort when neither the referenced item nor the channel carries art.
func anyItemArtwork(doc *xmlquery.Node) string {
	for _, item := range xmlaccess.NodesOf(doc, "//item") {
		if art := itemArtwork(item); art != "" {
			return art
		}
	}
	return ""
}

// extractItemValue pulls the item's own value block, when present.
func extractItemValue(item *xmlquery.Node) *domain.ValueBlock {
	return feedpkg.ExtractValue(item)
}

// normalizeURL makes artwork URLs absolute. Protocol-relative URLs get
// https; path-relative URLs resolve against the feed's origin.
func normalizeURL(raw, feedURL string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}

	base, err := url.Parse(feedURL)
	if err != nil || base.Host == "" {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return base.ResolveReference(ref).String()
}
