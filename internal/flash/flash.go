// Package flash carries one-shot user-facing messages across a redirect via
// a short-lived cookie, read and cleared on the next page render.
package flash

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

const (
	LevelSuccess = "success"
	LevelDanger  = "danger"
)

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Set queues a message for the next rendered page.
func Set(ctx *gin.Context, level, text string) {
	raw, err := json.Marshal(Message{Level: level, Text: text})

	if err != nil {
		return
	}

	encoded := base64.URLEncoding.EncodeToString(raw)

	ctx.SetCookie(cookieName, encoded, 300, "/", "", false, true)
}

// Take returns the pending message, if any, and clears it so it renders
// exactly once. A cookie that fails to decode is dropped silently.
func Take(ctx *gin.Context) (Message, bool) {
	encoded, err := ctx.Cookie(cookieName)

	if err != nil || encoded == "" {
		return Message{}, false
	}

	ctx.SetCookie(cookieName, "", -1, "/", "", false, true)

	raw, err := base64.URLEncoding.DecodeString(encoded)

	if err != nil {
		return Message{}, false
	}

	var msg Message

	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, false
	}

	return msg, true
}
