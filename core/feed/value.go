// ABOUTME: Value4Value extractor for podcast:value payment blocks
// ABOUTME: Extracts recipients, time splits and at most one nested remote-item tier

package feed

import (
	"github.com/antchfx/xmlquery"

	"podcheck-api/core/domain"
	"podcheck-api/core/xmlaccess"
)

// ExtractValue reads the podcast:value block directly beneath node.
// Returns nil when the element is absent, which is the normal case for
// most feeds and must not be treated as a failure.
func ExtractValue(node *xmlquery.Node) *domain.ValueBlock {
	value := firstNode(node, "podcast:value")
	if value == nil {
		return nil
	}

	block := &domain.ValueBlock{
		Type:       value.SelectAttr("type"),
		Method:     value.SelectAttr("method"),
		Suggested:  value.SelectAttr("suggested"),
		Recipients: extractRecipients(value),
	}

	for _, split := range xmlaccess.NodesOf(value, "podcast:valueTimeSplit") {
		timeSplit := domain.TimeSplit{
			StartTime:        split.SelectAttr("startTime"),
			RemotePercentage: split.SelectAttr("remotePercentage"),
			Duration:         split.SelectAttr("duration"),
		}
		if remote := firstNode(split, "podcast:remoteItem"); remote != nil {
			timeSplit.RemoteItem = &domain.RemoteItem{
				FeedGuid: remote.SelectAttr("feedGuid"),
				ItemGuid: remote.SelectAttr("itemGuid"),
				Value:    extractRemoteValue(remote),
			}
		}
		block.TimeSplits = append(block.TimeSplits, timeSplit)
	}

	return block
}

// extractRemoteValue reads the value block a remote-item element inlines
// for its target. This is the second and final tier: its time splits may
// reference a further remote item by GUID pair, but any value block that
// item carries in the document is not extracted. The two-tier limit is
// the namespace's, not ours, and holds however deep the document goes.
func extractRemoteValue(remoteItem *xmlquery.Node) *domain.RemoteValue {
	value := firstNode(remoteItem, "podcast:value")
	if value == nil {
		return nil
	}

	remote := &domain.RemoteValue{
		Type:       value.SelectAttr("type"),
		Method:     value.SelectAttr("method"),
		Suggested:  value.SelectAttr("suggested"),
		Recipients: extractRecipients(value),
	}

	for _, split := range xmlaccess.NodesOf(value, "podcast:valueTimeSplit") {
		timeSplit := domain.RemoteTimeSplit{
			StartTime:        split.SelectAttr("startTime"),
			RemotePercentage: split.SelectAttr("remotePercentage"),
			Duration:         split.SelectAttr("duration"),
		}
		if nested := firstNode(split, "podcast:remoteItem"); nested != nil {
			timeSplit.RemoteItem = &domain.RemoteItemKey{
				FeedGuid: nested.SelectAttr("feedGuid"),
				ItemGuid: nested.SelectAttr("itemGuid"),
			}
		}
		remote.TimeSplits = append(remote.TimeSplits, timeSplit)
	}

	return remote
}

func extractRecipients(value *xmlquery.Node) []domain.Recipient {
	nodes := xmlaccess.NodesOf(value, "podcast:valueRecipient")
	if len(nodes) == 0 {
		return nil
	}
	recipients := make([]domain.Recipient, 0, len(nodes))
	for _, node := range nodes {
		recipients = append(recipients, domain.Recipient{
			Name:     node.SelectAttr("name"),
			Type:     node.SelectAttr("type"),
			Address:  node.SelectAttr("address"),
			Split:    node.SelectAttr("split"),
			ItemGuid: node.SelectAttr("itemGuid"),
		})
	}
	return recipients
}

func firstNode(node *xmlquery.Node, selector string) *xmlquery.Node {
	nodes := xmlaccess.NodesOf(node, selector)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
