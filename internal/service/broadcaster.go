package service

// Broadcaster interface for WebSocket event streaming (avoids import cycle)
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}
