// Package webhook forwards domain events to external HTTP endpoints.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/app/fanout"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
)

// Headers set on every delivery.
const (
	HeaderEvent     = "X-Tracker-Event"
	HeaderSignature = "X-Tracker-Signature"
)

// Poster sends a JSON body to a URL. *httpclient.Client satisfies it.
type Poster interface {
	PostJSON(ctx context.Context, url string, body []byte, header http.Header) error
}

// Envelope is the JSON body POSTed for each event.
type Envelope struct {
	Type        string    `json:"type"`
	AggregateID string    `json:"aggregate_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Data        any       `json:"data"`
}

type itemData struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	IsDone        bool    `json:"is_done"`
	ContributorID *string `json:"contributor_id"`
}

type itemAddedData struct {
	Item itemData `json:"item"`
}

type itemCompletedData struct {
	ItemID          string `json:"item_id"`
	ProjectComplete bool   `json:"project_complete"`
}

type contributorAssignedData struct {
	ItemID        string `json:"item_id"`
	ContributorID string `json:"contributor_id"`
}

// Notifier delivers each event to every configured endpoint.
type Notifier struct {
	client        Poster
	endpoints     []string
	maxConcurrent int
	secret        []byte
}

// NewNotifier creates a Notifier. An empty secret disables signing.
func NewNotifier(client Poster, endpoints []string, maxConcurrent int, secret string) *Notifier {
	n := &Notifier{
		client:        client,
		endpoints:     append([]string(nil), endpoints...),
		maxConcurrent: maxConcurrent,
	}
	if secret != "" {
		n.secret = []byte(secret)
	}
	return n
}

// Handle posts event to all endpoints concurrently and joins the failures.
// Its signature matches events.Handler.
func (n *Notifier) Handle(ctx context.Context, event domain.Event) error {
	if len(n.endpoints) == 0 {
		return nil
	}

	body, err := json.Marshal(NewEnvelope(event))
	if err != nil {
		return fmt.Errorf("encoding %s envelope: %w", event.EventType(), err)
	}

	header := http.Header{}
	header.Set(HeaderEvent, event.EventType().String())
	if n.secret != nil {
		header.Set(HeaderSignature, Sign(n.secret, body))
	}

	results := fanout.Run(ctx, n.maxConcurrent, n.endpoints, func(ctx context.Context, url string) (struct{}, error) {
		if err := n.client.PostJSON(ctx, url, body, header.Clone()); err != nil {
			return struct{}{}, fmt.Errorf("delivering %s to %s: %w", event.EventType(), url, err)
		}
		return struct{}{}, nil
	})
	return fanout.Errors(results)
}

// NewEnvelope maps event onto its wire form. Unknown event types carry no
// data.
func NewEnvelope(event domain.Event) Envelope {
	env := Envelope{
		Type:        event.EventType().String(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt().UTC(),
	}

	switch e := event.(type) {
	case project.ItemAdded:
		env.Data = itemAddedData{Item: itemData{
			ID:            e.Item.ID,
			Title:         e.Item.Title,
			Description:   e.Item.Description,
			IsDone:        e.Item.IsDone,
			ContributorID: e.Item.ContributorID,
		}}
	case project.ItemCompleted:
		env.Data = itemCompletedData{ItemID: e.ItemID, ProjectComplete: e.ProjectComplete}
	case project.ContributorAssigned:
		env.Data = contributorAssignedData{ItemID: e.ItemID, ContributorID: e.ContributorID}
	default:
		env.Data = struct{}{}
	}
	return env
}

// Sign returns the signature header value for body: "sha256=" followed by
// the hex HMAC-SHA256 of body under secret.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
