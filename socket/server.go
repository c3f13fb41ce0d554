package socket

import (
	"log"

	"travelbuddy_server/models"

	socketio "github.com/googollee/go-socket.io"
)

// NewServer initializes the Socket.IO server. Clients join a room named
// by their userId and receive "newMatch" events when the engine records a
// match involving them.
func NewServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		log.Printf("👥 Socket %s joined room for user %s\n", c.ID(), userID)
		c.Join(userID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

// MatchNotifier broadcasts newly created matches to both users' rooms.
type MatchNotifier struct {
	Server *socketio.Server
}

// NotifyMatch pushes a newMatch event to each side of the pair
func (n *MatchNotifier) NotifyMatch(match models.Match) {
	payload := map[string]interface{}{
		"matchId":   match.MatchID,
		"userAId":   match.UserAID,
		"userBId":   match.UserBID,
		"matchedAt": match.MatchedAt,
	}
	n.Server.BroadcastToRoom("/", match.UserAID, "newMatch", payload)
	n.Server.BroadcastToRoom("/", match.UserBID, "newMatch", payload)
}
