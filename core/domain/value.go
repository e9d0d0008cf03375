// ABOUTME: Value4Value payment split models including remote item references
// ABOUTME: Nesting is capped at two tiers by construction, per the podcast namespace

package domain

// ValueBlock is a podcast:value element: payment type/method plus the
// recipient splits and temporal splits declared beneath it.
type ValueBlock struct {
	Type       string      `json:"type"`
	Method     string      `json:"method"`
	Suggested  string      `json:"suggested"`
	Recipients []Recipient `json:"recipients"`
	TimeSplits []TimeSplit `json:"timeSplits"`
}

// Recipient is a podcast:valueRecipient. Split keeps its string form so
// the source value redisplays exactly.
type Recipient struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Address  string `json:"address"`
	Split    string `json:"split"`
	ItemGuid string `json:"itemGuid"`
}

// TimeSplit is a podcast:valueTimeSplit covering a time range of the
// episode, optionally redirecting a percentage to a remote item.
type TimeSplit struct {
	StartTime        string      `json:"startTime"`
	RemotePercentage string      `json:"remotePercentage"`
	Duration         string      `json:"duration"`
	RemoteItem       *RemoteItem `json:"remoteItem,omitempty"`
}

// RemoteItem references an episode in another feed by GUID pair. When
// the source feed inlines the target's own splits, Value carries them.
type RemoteItem struct {
	FeedGuid string       `json:"feedGuid"`
	ItemGuid string       `json:"itemGuid"`
	Value    *RemoteValue `json:"value,omitempty"`
}

// RemoteValue is the second (and final) tier of value nesting: the
// splits a remote item declares for itself. Its time splits can name a
// further remote item by GUID pair only; the types do not admit a
// third value tier even when a document contains one.
type RemoteValue struct {
	Type       string            `json:"type"`
	Method     string            `json:"method"`
	Suggested  string            `json:"suggested"`
	Recipients []Recipient       `json:"recipients"`
	TimeSplits []RemoteTimeSplit `json:"timeSplits"`
}

// RemoteTimeSplit is a time split inside a remote item's inlined value
// block.
type RemoteTimeSplit struct {
	StartTime        string         `json:"startTime"`
	RemotePercentage string         `json:"remotePercentage"`
	Duration         string         `json:"duration"`
	RemoteItem       *RemoteItemKey `json:"remoteItem,omitempty"`
}

// RemoteItemKey identifies a remote episode without any nested data.
type RemoteItemKey struct {
	FeedGuid string `json:"feedGuid"`
	ItemGuid string `json:"itemGuid"`
}

// ResolvedRemoteItem is the outcome of resolving a RemoteItem against
// its source feed. Failed resolutions leave the optional fields nil or
// empty rather than erroring; a miss is a valid negative result.
type ResolvedRemoteItem struct {
	FeedGuid string `json:"feedGuid"`
	ItemGuid string `json:"itemGuid"`

	// ArtworkURL is empty when no artwork could be located anywhere
	ArtworkURL string `json:"artworkUrl,omitempty"`

	// Value holds the remote episode's own payment block when the
	// remote document was fetched and contained one
	Value *ValueBlock `json:"value,omitempty"`

	// RemoteFeedGuid is the podcast:guid the remote channel actually
	// declares, which may differ from the reference's FeedGuid
	RemoteFeedGuid string `json:"remoteFeedGuid,omitempty"`
}
