package gateway

import (
	"chat-ops/domain"
	"chat-ops/errors"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newGatewayStub(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var calls []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/session/status", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "status")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"connected": true, "actor": "33600000000"})
	})
	mux.HandleFunc("GET /api/groups", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "groups")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id": "g1", "name": "Ops", "owner": "+33600000000", "actor_is_admin": true,
				"participants": []map[string]any{
					{"id": "+1111", "is_admin": true},
					{"id": "2222", "is_admin": false},
				},
			},
		})
	})
	mux.HandleFunc("GET /api/groups/g1", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "group:g1")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": "g1", "name": "Ops", "actor_is_admin": true,
			"participants": []map[string]any{{"id": "+1111", "is_admin": false}},
		})
	})
	mux.HandleFunc("POST /api/groups/g1/participants", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "add")
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("DELETE /api/groups/g1/participants/1111", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "remove")
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/groups/g1/invites", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "invite")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("POST /api/messages", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, "message")
		w.WriteHeader(http.StatusAccepted)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &calls
}

func TestClient_GroupState(t *testing.T) {
	req := require.New(t)
	server, _ := newGatewayStub(t)
	client := NewClient(ClientOptions{BaseURL: server.URL, Timeout: 5 * time.Second})

	state, err := client.GroupState(context.Background(), "g1")
	req.NoError(err)
	req.Equal("g1", state.GroupID)
	req.True(state.ActorIsAdmin)
	req.Equal([]domain.Target{"1111"}, state.Members)

	_, err = client.GroupState(context.Background(), "missing")
	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestClient_Groups(t *testing.T) {
	req := require.New(t)
	server, _ := newGatewayStub(t)
	client := NewClient(ClientOptions{BaseURL: server.URL, Timeout: 5 * time.Second})

	groups, err := client.Groups(context.Background())
	req.NoError(err)
	req.Len(groups, 1)
	req.Equal("Ops", groups[0].Name)
	req.Equal(domain.Target("33600000000"), groups[0].Owner)
	req.Len(groups[0].Participants, 2)
	req.Equal(domain.Target("1111"), groups[0].Participants[0].ID)
}

func TestOperationBindings(t *testing.T) {
	req := require.New(t)
	server, calls := newGatewayStub(t)
	client := NewClient(ClientOptions{BaseURL: server.URL, Timeout: 5 * time.Second})
	ctx := context.Background()

	add := AddOperation{client}
	req.NoError(add.ApplyPrimary(ctx, "g1", "2222"))
	req.NoError(add.ApplyFallback(ctx, "g1", "2222"))
	req.NoError(add.SendNotification(ctx, "2222", "welcome"))

	remove := RemoveOperation{client}
	req.NoError(remove.ApplyPrimary(ctx, "g1", "1111"))
	req.ErrorIs(remove.ApplyFallback(ctx, "g1", "1111"), errors.ErrFallbackUnavailable)

	req.Equal([]string{"add", "invite", "message", "remove"}, *calls)
}

func TestClient_Preflight(t *testing.T) {
	req := require.New(t)
	server, _ := newGatewayStub(t)

	t.Run("Connected session with opaque token passes", func(t *testing.T) {
		client := NewClient(ClientOptions{BaseURL: server.URL, Token: "opaque-token", Timeout: 5 * time.Second})
		req.NoError(client.Preflight(context.Background()))
	})

	t.Run("Expired JWT fails before touching the gateway", func(t *testing.T) {
		expired := signedToken(t, time.Now().Add(-time.Hour))
		client := NewClient(ClientOptions{BaseURL: server.URL, Token: expired, Timeout: 5 * time.Second})
		req.ErrorIs(client.Preflight(context.Background()), errors.ErrTokenExpired)
	})

	t.Run("Valid JWT passes", func(t *testing.T) {
		valid := signedToken(t, time.Now().Add(time.Hour))
		client := NewClient(ClientOptions{BaseURL: server.URL, Token: valid, Timeout: 5 * time.Second})
		req.NoError(client.Preflight(context.Background()))
	})

	t.Run("Disconnected session fails", func(t *testing.T) {
		down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"connected": false})
		}))
		defer down.Close()
		client := NewClient(ClientOptions{BaseURL: down.URL, Timeout: 5 * time.Second})
		req.ErrorIs(client.Preflight(context.Background()), errors.ErrSessionDown)
	})
}

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "session",
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}
