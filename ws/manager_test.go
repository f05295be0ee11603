package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(m *Manager, userID string) *Client {
	return &Client{
		UserID:  userID,
		Send:    make(chan []byte, sendBuffer),
		manager: m,
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestPushToUserFansOutToAllConnections(t *testing.T) {
	m := NewManager()
	go m.Run()

	c1 := newTestClient(m, "user-1")
	c2 := newTestClient(m, "user-1")
	other := newTestClient(m, "user-2")
	m.register <- c1
	m.register <- c2
	m.register <- other

	waitFor(t, func() bool { return m.ConnectedUsers() == 2 })

	m.PushToUser("user-1", []byte(`{"type":"timeline_ready"}`))

	for _, c := range []*Client{c1, c2} {
		select {
		case data := <-c.Send:
			assert.JSONEq(t, `{"type":"timeline_ready"}`, string(data))
		case <-time.After(time.Second):
			t.Fatal("expected push on connection")
		}
	}

	select {
	case <-other.Send:
		t.Fatal("unrelated user received push")
	default:
	}
}

func TestPushToUnknownUserIsNoop(t *testing.T) {
	m := NewManager()
	go m.Run()

	m.PushToUser("ghost", []byte("x"))
	assert.Equal(t, 0, m.ConnectedUsers())
}

func TestUnregisterRemovesUserWhenLastConnectionCloses(t *testing.T) {
	m := NewManager()
	go m.Run()

	c := newTestClient(m, "user-1")
	m.register <- c
	waitFor(t, func() bool { return m.ConnectedUsers() == 1 })

	m.unregister <- c
	waitFor(t, func() bool { return m.ConnectedUsers() == 0 })

	_, open := <-c.Send
	require.False(t, open, "send channel should be closed on unregister")
}
