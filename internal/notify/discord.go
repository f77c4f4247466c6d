// Package notify posts a Discord webhook summarizing a finished route,
// adapted field-for-field from the project's earlier game-finished
// notifier.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type Embed struct {
	Title       string       `json:"title,omitempty"`
	Type        string       `json:"type,omitempty"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// RouteSolved posts a summary embed (pose count and elapsed time) to
// webhookURL.
func RouteSolved(webhookURL string, poseCount int, elapsedSeconds float64) error {
	embed := Embed{
		Title: "Route solved",
		Color: 0x40c463,
		Fields: []EmbedField{
			{Name: "Poses", Value: fmt.Sprintf("%d", poseCount), Inline: true},
			{Name: "Elapsed", Value: fmt.Sprintf("%.2fs", elapsedSeconds), Inline: true},
		},
	}
	return send(webhookURL, webhookPayload{Embeds: []Embed{embed}})
}

func send(webhookURL string, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}

	resp, err := http.Post(webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("notify: webhook returned %s", resp.Status)
	}
	return nil
}
