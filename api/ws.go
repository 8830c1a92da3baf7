package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/civictrack/civictrack-api/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveSocket upgrades the connection and registers the requester as
// online. The client handles locationUpdate and distressCall events until
// the connection drops, at which point its presence entry is removed.
func (s *Server) serveSocket(c *gin.Context) {
	requester := c.GetString("requester")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	client := realtime.NewClient(requester, conn, s.registry, s.broadcaster)
	client.Run()
}
