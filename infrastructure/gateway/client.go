// Package gateway adapts the chat-gateway REST API to the SessionClient
// capability the bulk tooling consumes. One authenticated session, one
// outstanding call at a time; all protocol details live here.
package gateway

import (
	"chat-ops/domain"
	"chat-ops/errors"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
)

type ClientOptions struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client speaks the raw gateway endpoints. Operation bindings below narrow
// it to the SessionClient contract with the right primary/fallback pair.
type Client struct {
	http  *resty.Client
	token string
}

func NewClient(opts ClientOptions) *Client {
	http := resty.New().
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.Token).
		SetHeader("accept", "application/json").
		SetTimeout(opts.Timeout)
	return &Client{http: http, token: opts.Token}
}

type participantPayload struct {
	ID      string `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}

type groupPayload struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Owner        string               `json:"owner"`
	ActorIsAdmin bool                 `json:"actor_is_admin"`
	Participants []participantPayload `json:"participants"`
}

func (c *Client) GroupState(ctx context.Context, groupID string) (domain.GroupState, error) {
	var payload groupPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/api/groups/%s", groupID))
	if err != nil {
		return domain.GroupState{}, fmt.Errorf("fetching group %s: %w", groupID, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return domain.GroupState{}, fmt.Errorf("group %s: %w", groupID, errors.ErrGroupNotFound)
	}
	if resp.IsError() {
		return domain.GroupState{}, fmt.Errorf("fetching group %s: gateway returned %s", groupID, resp.Status())
	}
	return domain.GroupState{
		GroupID:      payload.ID,
		ActorIsAdmin: payload.ActorIsAdmin,
		Members: lo.Map(payload.Participants, func(p participantPayload, _ int) domain.Target {
			return domain.Target(p.ID).Normalize()
		}),
	}, nil
}

func (c *Client) Groups(ctx context.Context) ([]domain.GroupInfo, error) {
	var payload []groupPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/api/groups")
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("listing groups: gateway returned %s", resp.Status())
	}
	return lo.Map(payload, func(g groupPayload, _ int) domain.GroupInfo {
		return domain.GroupInfo{
			ID:    g.ID,
			Name:  g.Name,
			Owner: domain.Target(g.Owner).Normalize(),
			Participants: lo.Map(g.Participants, func(p participantPayload, _ int) domain.Participant {
				return domain.Participant{ID: domain.Target(p.ID).Normalize(), IsAdmin: p.IsAdmin}
			}),
		}
	}), nil
}

// AddParticipant adds the target directly to the group. Success is decided
// by the caller's re-query, not by the response body.
func (c *Client) AddParticipant(ctx context.Context, groupID string, target domain.Target) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"id": string(target)}).
		Post(fmt.Sprintf("/api/groups/%s/participants", groupID))
	if err != nil {
		return fmt.Errorf("adding %s to group %s: %w", target, groupID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("adding %s to group %s: gateway returned %s", target, groupID, resp.Status())
	}
	return nil
}

func (c *Client) RemoveParticipant(ctx context.Context, groupID string, target domain.Target) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/groups/%s/participants/%s", groupID, target))
	if err != nil {
		return fmt.Errorf("removing %s from group %s: %w", target, groupID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("removing %s from group %s: gateway returned %s", target, groupID, resp.Status())
	}
	return nil
}

// SendInvite messages the group's invite link to the target, the secondary
// path when a direct add is refused.
func (c *Client) SendInvite(ctx context.Context, groupID string, target domain.Target) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"id": string(target)}).
		Post(fmt.Sprintf("/api/groups/%s/invites", groupID))
	if err != nil {
		return fmt.Errorf("inviting %s to group %s: %w", target, groupID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("inviting %s to group %s: gateway returned %s", target, groupID, resp.Status())
	}
	return nil
}

func (c *Client) SendMessage(ctx context.Context, target domain.Target, message string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"to": string(target), "body": message}).
		Post("/api/messages")
	if err != nil {
		return fmt.Errorf("messaging %s: %w", target, err)
	}
	if resp.IsError() {
		return fmt.Errorf("messaging %s: gateway returned %s", target, resp.Status())
	}
	return nil
}

// AddOperation binds the client to the add mutation: primary is a direct
// add, fallback is the invite link.
type AddOperation struct {
	*Client
}

func (o AddOperation) ApplyPrimary(ctx context.Context, groupID string, target domain.Target) error {
	return o.AddParticipant(ctx, groupID, target)
}

func (o AddOperation) ApplyFallback(ctx context.Context, groupID string, target domain.Target) error {
	return o.SendInvite(ctx, groupID, target)
}

func (o AddOperation) SendNotification(ctx context.Context, target domain.Target, message string) error {
	return o.SendMessage(ctx, target, message)
}

// RemoveOperation binds the client to the remove mutation. There is no
// fallback channel for a removal.
type RemoveOperation struct {
	*Client
}

func (o RemoveOperation) ApplyPrimary(ctx context.Context, groupID string, target domain.Target) error {
	return o.RemoveParticipant(ctx, groupID, target)
}

func (o RemoveOperation) ApplyFallback(context.Context, string, domain.Target) error {
	return errors.ErrFallbackUnavailable
}

func (o RemoveOperation) SendNotification(ctx context.Context, target domain.Target, message string) error {
	return o.SendMessage(ctx, target, message)
}
