package feed

import (
	"testing"

	"github.com/antchfx/xmlquery"

	"podcheck-api/core/xmlaccess"
)

const fullFeed = `<?xml version="1.0"?>
<rss xmlns:podcast="https://podcastindex.org/namespace/1.0" xmlns:itunes="http://www.itunes.com/dtds/podcast-1.0.dtd">
<channel>
	<title>Full Show</title>
	<description>A complete feed</description>
	<language>en-us</language>
	<link>https://example.com</link>
	<lastBuildDate>Mon, 02 Jan 2023 15:04:05 GMT</lastBuildDate>
	<image><url>https://example.com/cover.png</url></image>
	<itunes:author>Jane Host</itunes:author>
	<itunes:owner><itunes:email>jane@example.com</itunes:email></itunes:owner>
	<podcast:guid>feed-guid-1</podcast:guid>
	<podcast:medium>podcast</podcast:medium>
	<podcast:value type="lightning" method="keysend" suggested="0.00000005">
		<podcast:valueRecipient name="Jane" type="node" address="02aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" split="100"/>
	</podcast:value>
	<item>
		<title>Episode 1</title>
		<description>First episode</description>
		<guid>ep-1</guid>
		<pubDate>Mon, 09 Jan 2023 10:00:00 GMT</pubDate>
		<itunes:duration>1:02:03</itunes:duration>
		<itunes:image href="https://example.com/ep1.png"/>
		<enclosure url="https://example.com/ep1.mp3" type="audio/mpeg" length="52428800"/>
		<podcast:chapters url="https://example.com/ep1-chapters.json" type="application/json+chapters"/>
		<podcast:person role="host" href="https://example.com/jane" img="https://example.com/jane.png">Jane Host</podcast:person>
		<podcast:person role="guest">Sam Guest</podcast:person>
		<podcast:value type="lightning" method="keysend">
			<podcast:valueRecipient name="Jane" address="02aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" split="90"/>
			<podcast:valueRecipient name="Producer" address="03bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" split="10"/>
			<podcast:valueTimeSplit startTime="60" duration="300" remotePercentage="95">
				<podcast:remoteItem feedGuid="remote-feed" itemGuid="remote-item">
					<podcast:value type="lightning" method="keysend">
						<podcast:valueRecipient name="Musician" address="02cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc" split="100"/>
						<podcast:valueTimeSplit startTime="0" duration="60">
							<podcast:remoteItem feedGuid="deep-feed" itemGuid="deep-item">
								<podcast:value type="lightning" method="keysend">
									<podcast:valueRecipient name="TooDeep" address="02dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd" split="100"/>
								</podcast:value>
							</podcast:remoteItem>
						</podcast:valueTimeSplit>
					</podcast:value>
				</podcast:remoteItem>
			</podcast:valueTimeSplit>
		</podcast:value>
	</item>
	<item>
		<title>Episode 2</title>
		<guid>ep-2</guid>
		<enclosure url="https://example.com/ep2.mp3" type="audio/mpeg" length="41943040"/>
	</item>
	<podcast:liveItem status="live" start="2023-01-15T09:00:00Z" end="2023-01-15T11:00:00Z" chat="https://chat.example.com">
		<title>Live Stream</title>
		<enclosure url="https://stream.example.com/live" type="audio/mpegurl" length="0"/>
	</podcast:liveItem>
</channel>
</rss>`

func parseFeed(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	parsed, err := xmlaccess.ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	return parsed
}

func TestExtract_Channel(t *testing.T) {
	feed := Extract(parseFeed(t, fullFeed))

	channel := feed.Channel
	if channel.Title != "Full Show" {
		t.Errorf("Title = %q, want Full Show", channel.Title)
	}
	if channel.Language != "en-us" {
		t.Errorf("Language = %q, want en-us", channel.Language)
	}
	if channel.Image != "https://example.com/cover.png" {
		t.Errorf("Image = %q", channel.Image)
	}
	if channel.Email != "jane@example.com" {
		t.Errorf("Email = %q, want jane@example.com", channel.Email)
	}
	if channel.GUID != "feed-guid-1" {
		t.Errorf("GUID = %q, want feed-guid-1", channel.GUID)
	}
	if channel.Medium != "podcast" {
		t.Errorf("Medium = %q, want podcast", channel.Medium)
	}
	if channel.Value == nil {
		t.Fatal("channel Value is nil")
	}
	if channel.Value.Type != "lightning" {
		t.Errorf("Value.Type = %q, want lightning", channel.Value.Type)
	}
}

func TestExtract_Episodes(t *testing.T) {
	feed := Extract(parseFeed(t, fullFeed))

	if len(feed.Episodes) != 2 {
		t.Fatalf("episode count = %d, want 2", len(feed.Episodes))
	}

	ep := feed.Episodes[0]
	if ep.Title != "Episode 1" {
		t.Errorf("Title = %q", ep.Title)
	}
	if ep.GUID != "ep-1" {
		t.Errorf("GUID = %q", ep.GUID)
	}
	if ep.Duration != "1:02:03" {
		t.Errorf("Duration = %q", ep.Duration)
	}
	if ep.Image != "https://example.com/ep1.png" {
		t.Errorf("Image = %q", ep.Image)
	}
	if ep.Enclosure.URL != "https://example.com/ep1.mp3" {
		t.Errorf("Enclosure.URL = %q", ep.Enclosure.URL)
	}
	if ep.Enclosure.Length != "52428800" {
		t.Errorf("Enclosure.Length = %q", ep.Enclosure.Length)
	}
	if ep.ChaptersURL != "https://example.com/ep1-chapters.json" {
		t.Errorf("ChaptersURL = %q", ep.ChaptersURL)
	}

	if len(ep.Persons) != 2 {
		t.Fatalf("person count = %d, want 2", len(ep.Persons))
	}
	if ep.Persons[0].Name != "Jane Host" {
		t.Errorf("person name = %q, want Jane Host", ep.Persons[0].Name)
	}
	if ep.Persons[0].Role != "host" {
		t.Errorf("person role = %q, want host", ep.Persons[0].Role)
	}
	if ep.Persons[1].Name != "Sam Guest" {
		t.Errorf("second person name = %q, want Sam Guest", ep.Persons[1].Name)
	}

	// Absent optional elements become empty fields, not errors
	bare := feed.Episodes[1]
	if bare.Duration != "" || bare.ChaptersURL != "" || len(bare.Persons) != 0 || bare.Value != nil {
		t.Error("bare episode should have empty optional fields")
	}
}

func TestExtract_ValueNestingStopsAtTwoTiers(t *testing.T) {
	feed := Extract(parseFeed(t, fullFeed))

	value := feed.Episodes[0].Value
	if value == nil {
		t.Fatal("episode value is nil")
	}
	if len(value.Recipients) != 2 {
		t.Fatalf("recipient count = %d, want 2", len(value.Recipients))
	}
	if len(value.TimeSplits) != 1 {
		t.Fatalf("time split count = %d, want 1", len(value.TimeSplits))
	}

	remote := value.TimeSplits[0].RemoteItem
	if remote == nil {
		t.Fatal("remote item is nil")
	}
	if remote.FeedGuid != "remote-feed" || remote.ItemGuid != "remote-item" {
		t.Errorf("remote item = %s/%s", remote.FeedGuid, remote.ItemGuid)
	}

	// Tier two: the remote item's own value block is extracted
	if remote.Value == nil {
		t.Fatal("remote value is nil")
	}
	if len(remote.Value.Recipients) != 1 || remote.Value.Recipients[0].Name != "Musician" {
		t.Error("remote value recipients not extracted")
	}

	// The document nests a third value tier, but the model only keeps
	// the GUID pair at that depth
	if len(remote.Value.TimeSplits) != 1 {
		t.Fatalf("remote time split count = %d, want 1", len(remote.Value.TimeSplits))
	}
	deep := remote.Value.TimeSplits[0].RemoteItem
	if deep == nil {
		t.Fatal("deep remote item key is nil")
	}
	if deep.FeedGuid != "deep-feed" || deep.ItemGuid != "deep-item" {
		t.Errorf("deep remote item = %s/%s", deep.FeedGuid, deep.ItemGuid)
	}
}

func TestExtract_LiveItems(t *testing.T) {
	feed := Extract(parseFeed(t, fullFeed))

	if len(feed.LiveItems) != 1 {
		t.Fatalf("live item count = %d, want 1", len(feed.LiveItems))
	}
	live := feed.LiveItems[0]
	if live.Title != "Live Stream" {
		t.Errorf("Title = %q", live.Title)
	}
	if live.Status != "live" {
		t.Errorf("Status = %q", live.Status)
	}
	if live.Start != "2023-01-15T09:00:00Z" {
		t.Errorf("Start = %q", live.Start)
	}
	if live.Chat != "https://chat.example.com" {
		t.Errorf("Chat = %q", live.Chat)
	}
	if live.Enclosure.URL != "https://stream.example.com/live" {
		t.Errorf("Enclosure.URL = %q", live.Enclosure.URL)
	}
}

func TestExtract_EmptyChannel(t *testing.T) {
	feed := Extract(parseFeed(t, `<rss><channel></channel></rss>`))

	if feed.Channel.Title != "" {
		t.Errorf("Title = %q, want empty", feed.Channel.Title)
	}
	if len(feed.Episodes) != 0 {
		t.Errorf("episode count = %d, want 0", len(feed.Episodes))
	}
	if feed.Channel.Value != nil {
		t.Error("channel value should be nil")
	}
}
