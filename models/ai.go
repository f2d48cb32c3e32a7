package models

import "time"

// AgentRequest is the payload coming from the frontend into the agent
// endpoints. Text is the user's booking request (voice→text or typed).
type AgentRequest struct {
	UserID string `json:"user_id,omitempty"`
	Text   string `json:"text" binding:"required"`
}

// AgentBookingResponse is returned by the booking endpoint: the normalized
// records plus a session id under which the result is cached.
type AgentBookingResponse struct {
	SessionID string          `json:"session_id"`
	Records   []BookingRecord `json:"data"`
}

// AgentSession is the cached outcome of one booking request, kept in Redis
// under a TTL so a client can re-fetch the result it was just given.
type AgentSession struct {
	SessionID string          `json:"session_id"`
	UserID    string          `json:"user_id,omitempty"`
	Query     string          `json:"query"`
	Records   []BookingRecord `json:"records"`
	CreatedAt time.Time       `json:"created_at"`
}
