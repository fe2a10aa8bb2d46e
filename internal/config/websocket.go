package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Upgrader accepts any origin in development; in production the upgrader's
// same-origin check applies.
func (c Config) Upgrader() websocket.Upgrader {
	upgrader := websocket.Upgrader{}
	if c.Development() {
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}
	return upgrader
}
