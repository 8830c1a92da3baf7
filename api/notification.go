package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// listNotifications is the API for fetching the requester's notifications
func (s *Server) listNotifications(c *gin.Context) {
	requester := c.GetString("requester")

	notifications, err := s.store.ListNotifications(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

// markNotificationsRead is the API for flagging all of the requester's
// notifications as read
func (s *Server) markNotificationsRead(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.store.MarkNotificationsRead(requester); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
