// Package notify sends webhook notifications when a fetch cycle crosses a
// subscriber milestone.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"yt-dashboard/internal/stats"
)

// milestones are the subscriber counts that trigger a webhook.
var milestones = []int64{1000, 10000, 100000, 1000000}

// Payload is the JSON body sent to the webhook URL.
type Payload struct {
	ChannelName string `json:"channel_name"`
	Subscribers int64  `json:"subscribers"`
	Milestone   int64  `json:"milestone"`
	Timestamp   string `json:"timestamp"`
}

// Notifier posts milestone payloads to a webhook URL.
// With an empty URL it is a no-op.
type Notifier struct {
	webhookURL string
	client     *http.Client
	retryWait  time.Duration
}

// New returns a Notifier that posts to webhookURL.
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		retryWait:  5 * time.Second,
	}
}

// Crossed returns the highest milestone passed between prev and cur, or 0
// when none was crossed.
func Crossed(prev, cur int64) int64 {
	var hit int64
	for _, m := range milestones {
		if prev < m && cur >= m {
			hit = m
		}
	}
	return hit
}

// Notify fires the webhook for a crossed milestone. It retries once after
// a short wait on failure.
func (n *Notifier) Notify(c *stats.ChannelSnapshot, milestone int64) {
	if n.webhookURL == "" || milestone == 0 {
		return
	}

	payload := Payload{
		ChannelName: c.ChannelName,
		Subscribers: c.Subscribers,
		Milestone:   milestone,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	log.Printf("notify: %q passed %s subscribers — sending webhook", c.ChannelName, humanize.Comma(milestone))

	if err := n.post(payload); err != nil {
		log.Printf("notify: webhook failed (%v) — retrying", err)
		time.Sleep(n.retryWait)
		if err := n.post(payload); err != nil {
			log.Printf("notify: webhook retry failed: %v", err)
		}
	}
}

func (n *Notifier) post(payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}
