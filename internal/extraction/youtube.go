package extraction

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nathaniel1232/Studymaxx-sub002/internal/domain"
)

const timedTextEndpoint = "https://www.youtube.com/api/timedtext"

// YouTubeExtractor fetches a video's caption track from the timedtext
// endpoint and flattens it into plain text.
type YouTubeExtractor struct {
	client *http.Client
}

// NewYouTubeExtractor creates a YouTubeExtractor. A nil client gets a
// default with a 30s timeout.
func NewYouTubeExtractor(client *http.Client) *YouTubeExtractor {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &YouTubeExtractor{client: client}
}

func (e *YouTubeExtractor) SourceType() domain.SourceType {
	return domain.SourceYouTube
}

func (e *YouTubeExtractor) Extract(ctx context.Context, input RawMaterial) (string, []string, error) {
	videoID, err := parseVideoID(input.URL)
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "unrecognized YouTube URL",
			Suggestion: "use a link of the form https://www.youtube.com/watch?v=...",
		}
	}

	transcript, err := e.fetchTranscript(ctx, videoID)
	if err != nil {
		return "", nil, &domain.ExtractionError{
			Reason:     "could not fetch a transcript for this video",
			Suggestion: "the video may have captions disabled",
		}
	}

	return transcript, nil, nil
}

func (e *YouTubeExtractor) fetchTranscript(ctx context.Context, videoID string) (string, error) {
	endpoint := fmt.Sprintf("%s?v=%s&lang=en", timedTextEndpoint, url.QueryEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return flattenTimedText(body)
}

// timedText mirrors the caption XML: <transcript><text ...>…</text></transcript>
type timedText struct {
	Lines []struct {
		Content string `xml:",chardata"`
	} `xml:"text"`
}

func flattenTimedText(data []byte) (string, error) {
	var transcript timedText
	if err := xml.Unmarshal(data, &transcript); err != nil {
		return "", err
	}
	if len(transcript.Lines) == 0 {
		return "", fmt.Errorf("transcript is empty")
	}

	parts := make([]string, 0, len(transcript.Lines))
	for _, line := range transcript.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Content))
		if text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

// parseVideoID accepts watch URLs, youtu.be short links, and bare video IDs.
func parseVideoID(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty URL")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		// Possibly a bare video ID
		if len(raw) == 11 && !strings.ContainsAny(raw, "/?&= ") {
			return raw, nil
		}
		return "", fmt.Errorf("not a YouTube URL")
	}

	host := strings.TrimPrefix(u.Host, "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		// Shorts and embeds keep the ID in the path.
		if parts := strings.Split(strings.Trim(u.Path, "/"), "/"); len(parts) == 2 &&
			(parts[0] == "shorts" || parts[0] == "embed") {
			return parts[1], nil
		}
	case "youtu.be":
		if id := strings.Trim(u.Path, "/"); id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("no video ID in URL")
}
