package socket

import (
	"log"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
)

// Server wraps the Socket.IO server with per-match rooms. Clients join the
// room of a match they are watching and receive rosterUpdate events whenever
// its occupancy changes.
type Server struct {
	io *socketio.Server
}

// NewServer initializes the Socket.IO server and its match-room handlers
func NewServer() *Server {
	io := socketio.NewServer(nil)

	io.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	io.OnEvent("/", "watchMatch", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("Ignoring watchMatch request without matchId")
			return
		}
		c.Join(roomName(matchID))
	})

	io.OnEvent("/", "unwatchMatch", func(c socketio.Conn, matchID string) {
		if matchID == "" {
			return
		}
		c.Leave(roomName(matchID))
	})

	io.OnError("/", func(c socketio.Conn, err error) {
		log.Printf("Socket error: %v", err)
	})

	io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return &Server{io: io}
}

// BroadcastRosterUpdate pushes a roster payload to everyone watching the
// match. Implements services.RosterNotifier.
func (s *Server) BroadcastRosterUpdate(matchID string, payload map[string]interface{}) {
	if s == nil || s.io == nil || matchID == "" {
		return
	}
	s.io.BroadcastToRoom("/", roomName(matchID), "rosterUpdate", payload)
}

// Handler exposes the server for mounting under /socket.io/
func (s *Server) Handler() http.Handler {
	return s.io
}

// Serve runs the Socket.IO event loop; call in a goroutine
func (s *Server) Serve() error {
	return s.io.Serve()
}

// Close shuts the Socket.IO server down
func (s *Server) Close() error {
	return s.io.Close()
}

func roomName(matchID string) string {
	return "match:" + matchID
}
