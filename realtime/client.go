package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/civictrack/civictrack-api/schema"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096

	sendBufferSize = 16
)

// Named events on the websocket wire.
const (
	EventLocationUpdate = "locationUpdate"
	EventDistressCall   = "distressCall"
	EventDistressAlert  = "distressAlert"
)

// clientMessage is an inbound event from a connected user.
type clientMessage struct {
	Event     string  `json:"event"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
}

// alertEnvelope is the outbound distressAlert frame.
type alertEnvelope struct {
	Event string `json:"event"`
	Alert
}

// Client is one websocket connection. It registers itself as the user's
// presence channel and pumps events in both directions until the
// connection dies.
type Client struct {
	accountNumber string
	conn          *websocket.Conn
	registry      *Registry
	broadcaster   *Broadcaster
	send          chan Alert
}

func NewClient(accountNumber string, conn *websocket.Conn, registry *Registry, broadcaster *Broadcaster) *Client {
	return &Client{
		accountNumber: accountNumber,
		conn:          conn,
		registry:      registry,
		broadcaster:   broadcaster,
		send:          make(chan Alert, sendBufferSize),
	}
}

// Deliver queues an alert without blocking. A recipient whose buffer is
// full loses the alert; delivery is at most once with no retry.
func (c *Client) Deliver(alert Alert) {
	select {
	case c.send <- alert:
	default:
		log.WithFields(log.Fields{
			"prefix":         logPrefix,
			"account_number": c.accountNumber,
		}).Warn("send buffer full, alert dropped")
	}
}

// Run registers the client in the presence registry and starts both pumps.
func (c *Client) Run() {
	c.registry.Connect(c.accountNumber, c)
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.registry.Disconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithFields(log.Fields{
					"prefix":         logPrefix,
					"account_number": c.accountNumber,
					"error":          err,
				}).Info("websocket read error")
			}
			break
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.WithFields(log.Fields{
				"prefix":         logPrefix,
				"account_number": c.accountNumber,
				"error":          err,
			}).Warn("malformed client message")
			continue
		}

		c.dispatch(msg)
	}
}

func (c *Client) dispatch(msg clientMessage) {
	switch msg.Event {
	case EventLocationUpdate:
		if err := c.broadcaster.UpdateLocation(c.accountNumber, msg.Latitude, msg.Longitude); err != nil {
			log.WithFields(log.Fields{
				"prefix":         logPrefix,
				"account_number": c.accountNumber,
				"error":          err,
			}).Error("location update")
		}
	case EventDistressCall:
		loc := schema.Location{Latitude: msg.Latitude, Longitude: msg.Longitude}
		if err := c.broadcaster.BroadcastDistress(context.Background(), c.accountNumber, loc, msg.Message); err != nil {
			log.WithFields(log.Fields{
				"prefix":         logPrefix,
				"account_number": c.accountNumber,
				"error":          err,
			}).Error("distress broadcast")
		}
	default:
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"event":  msg.Event,
		}).Debug("unknown client event")
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case alert, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(alertEnvelope{
				Event: EventDistressAlert,
				Alert: alert,
			}); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
