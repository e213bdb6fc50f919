package service

// Broadcaster pushes live events to admin dashboard sockets
// (avoids an import cycle with the ws package)
type Broadcaster interface {
	BroadcastToClient(clientID string, msgType string, payload interface{})
}
