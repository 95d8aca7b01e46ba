// Package youtube fetches channel and video statistics from the YouTube
// Data API v3. The fetcher is purely computational — it returns snapshots
// to the caller and never writes to storage.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"yt-dashboard/internal/stats"
)

// ErrChannelNotFound is returned when the channel id has no match.
var ErrChannelNotFound = errors.New("channel not found")

// Client wraps the Data API service for a single API key.
type Client struct {
	svc *youtube.Service
}

// NewClient builds an API-key-authenticated Data API client. Extra options
// are appended after the key, so callers can point the client at a
// different endpoint.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key required")
	}
	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// FetchChannel returns one channel snapshot for channelID. FetchedAt is
// left zero — the caller stamps it at insertion time.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*stats.ChannelSnapshot, error) {
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrChannelNotFound, channelID)
	}

	item := resp.Items[0]
	snap := &stats.ChannelSnapshot{}
	if item.Snippet != nil {
		snap.ChannelName = item.Snippet.Title
	}
	if st := item.Statistics; st != nil {
		// Hidden subscriber counts stay zero, like any absent counter.
		if !st.HiddenSubscriberCount {
			snap.Subscribers = int64(st.SubscriberCount)
		}
		snap.TotalViews = int64(st.ViewCount)
		snap.TotalVideos = int64(st.VideoCount)
	}
	// The Data API no longer reports dislike counts; the field stays 0.
	return snap, nil
}

// FetchRecentVideos returns up to maxVideos snapshots for the channel's
// most recent uploads, newest first. Listing entries that are not playable
// videos are skipped, as are videos whose statistics are unavailable; any
// other API failure aborts the whole fetch.
func (c *Client) FetchRecentVideos(ctx context.Context, channelID string, maxVideos int64) ([]stats.VideoSnapshot, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		MaxResults(maxVideos).
		Order("date").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search.list: %w", err)
	}

	videos := make([]stats.VideoSnapshot, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			// Playlist or channel entry in the listing.
			continue
		}
		snap, err := c.fetchVideoStats(ctx, item)
		if err != nil {
			return nil, err
		}
		if snap == nil {
			continue
		}
		videos = append(videos, *snap)
	}
	return videos, nil
}

// fetchVideoStats issues the per-video statistics call. It returns
// (nil, nil) when the statistics are unavailable so the caller can skip
// just that item.
func (c *Client) fetchVideoStats(ctx context.Context, item *youtube.SearchResult) (*stats.VideoSnapshot, error) {
	id := item.Id.VideoId
	resp, err := c.svc.Videos.List([]string{"statistics"}).
		Id(id).
		Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			log.Printf("youtube: statistics unavailable for %s, skipping", id)
			return nil, nil
		}
		return nil, fmt.Errorf("videos.list %s: %w", id, err)
	}
	if len(resp.Items) == 0 {
		log.Printf("youtube: no statistics for %s, skipping", id)
		return nil, nil
	}

	snap := &stats.VideoSnapshot{VideoID: id}
	if item.Snippet != nil {
		snap.Title = item.Snippet.Title
		snap.PublishedAt = parsePublished(item.Snippet.PublishedAt)
	}
	applyStatistics(snap, resp.Items[0].Statistics)
	return snap, nil
}

// applyStatistics copies the numeric counters onto snap. Counters the API
// omits decode as zero, which matches the storage defaults.
func applyStatistics(snap *stats.VideoSnapshot, st *youtube.VideoStatistics) {
	if st == nil {
		return
	}
	snap.Views = int64(st.ViewCount)
	snap.Likes = int64(st.LikeCount)
	snap.Dislikes = int64(st.DislikeCount)
	snap.Comments = int64(st.CommentCount)
}

// parsePublished parses the RFC 3339 publish timestamp. An unparseable
// value yields the zero time and the query layer falls back to fetched_at.
func parsePublished(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
