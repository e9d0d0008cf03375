// ABOUTME: Feed model extractor walks a parsed XML document into the canonical Feed model
// ABOUTME: Pure transformation with no I/O; missing elements become empty strings

package feed

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"podcheck-api/core/domain"
	"podcheck-api/core/xmlaccess"
)

// Extract maps a parsed feed document into the canonical Feed model.
// It is a pure function: no I/O, no panics. Structural XML problems are
// caught upstream by xmlaccess.ParseDocument; absent elements here
// simply become empty fields.
func Extract(doc *xmlquery.Node) *domain.Feed {
	channelNode, _ := xmlquery.Query(doc, "//channel")

	feed := &domain.Feed{
		Channel: extractChannel(channelNode),
	}

	items, _ := xmlquery.QueryAll(doc, "//item")
	feed.Episodes = make([]domain.Episode, 0, len(items))
	for _, item := range items {
		feed.Episodes = append(feed.Episodes, extractEpisode(item))
	}

	for _, liveItem := range xmlaccess.NodesOf(doc, "//podcast:liveItem") {
		feed.LiveItems = append(feed.LiveItems, extractLiveItem(liveItem))
	}

	return feed
}

func extractChannel(channel *xmlquery.Node) domain.Channel {
	return domain.Channel{
		Title:         xmlaccess.TextOf(channel, "title"),
		Description:   xmlaccess.TextOf(channel, "description"),
		Language:      xmlaccess.TextOf(channel, "language"),
		Link:          xmlaccess.TextOf(channel, "link"),
		LastBuildDate: xmlaccess.TextOf(channel, "lastBuildDate"),
		PubDate:       xmlaccess.TextOf(channel, "pubDate"),
		Image:         xmlaccess.TextOf(channel, "image/url"),
		Explicit:      xmlaccess.TextOf(channel, "itunes:explicit"),
		Category:      xmlaccess.TextOf(channel, "itunes:category"),
		Keywords:      xmlaccess.TextOf(channel, "itunes:keywords"),
		Author:        xmlaccess.TextOf(channel, "itunes:author"),
		Email:         xmlaccess.TextOf(channel, "itunes:owner/itunes:email"),
		Complete:      xmlaccess.TextOf(channel, "podcast:complete"),
		Block:         xmlaccess.TextOf(channel, "podcast:block"),
		Medium:        xmlaccess.TextOf(channel, "podcast:medium"),
		GUID:          xmlaccess.TextOf(channel, "podcast:guid"),
		Value:         ExtractValue(channel),
	}
}

func extractEpisode(item *xmlquery.Node) domain.Episode {
	description := xmlaccess.TextOf(item, "description")

	return domain.Episode{
		Title:       xmlaccess.TextOf(item, "title"),
		Description: description,
		GUID:        xmlaccess.TextOf(item, "guid"),
		PubDate:     xmlaccess.TextOf(item, "pubDate"),
		Duration:    xmlaccess.TextOf(item, "itunes:duration"),
		Explicit:    xmlaccess.TextOf(item, "itunes:explicit"),
		Image:       extractImageRef(item, "itunes:image"),
		Enclosure:   extractEnclosure(item),
		ChaptersURL: xmlaccess.AttrOf(item, "podcast:chapters", "url"),
		Persons:     extractPersons(item),
		Value:       ExtractValue(item),
		Tracks:      ExtractTracks(description),
	}
}

func extractLiveItem(liveItem *xmlquery.Node) domain.LiveItem {
	return domain.LiveItem{
		Title:     xmlaccess.TextOf(liveItem, "title"),
		Status:    liveItem.SelectAttr("status"),
		Start:     liveItem.SelectAttr("start"),
		End:       liveItem.SelectAttr("end"),
		Chat:      liveItem.SelectAttr("chat"),
		Link:      xmlaccess.TextOf(liveItem, "link"),
		Enclosure: extractEnclosure(liveItem),
		Value:     ExtractValue(liveItem),
	}
}

func extractEnclosure(node *xmlquery.Node) domain.Enclosure {
	return domain.Enclosure{
		URL:    xmlaccess.AttrOf(node, "enclosure", "url"),
		Type:   xmlaccess.AttrOf(node, "enclosure", "type"),
		Length: xmlaccess.AttrOf(node, "enclosure", "length"),
	}
}

func extractPersons(item *xmlquery.Node) []domain.Person {
	nodes := xmlaccess.NodesOf(item, "podcast:person")
	if len(nodes) == 0 {
		return nil
	}
	persons := make([]domain.Person, 0, len(nodes))
	for _, node := range nodes {
		persons = append(persons, domain.Person{
			Name:  strings.TrimSpace(node.InnerText()),
			Href:  node.SelectAttr("href"),
			Img:   node.SelectAttr("img"),
			Group: node.SelectAttr("group"),
			Role:  node.SelectAttr("role"),
		})
	}
	return persons
}

// extractImageRef reads an image reference that generators emit either
// as an href attribute (the itunes form) or as element text.
func extractImageRef(node *xmlquery.Node, selector string) string {
	if href := xmlaccess.AttrOf(node, selector, "href"); href != "" {
		return href
	}
	return xmlaccess.TextOf(node, selector)
}
