package models

import (
	"strings"
	"time"
)

// Cliente do salão. Phone and Birthday hold digits only; masks are applied
// on display.
type Client struct {
	ID ID `json:"id"`

	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Notes    string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppendNote adds a "DD/MM/YYYY: text" line to the client's notes log.
func (c *Client) AppendNote(day time.Time, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	entry := day.Format("02/01/2006") + ": " + text
	if c.Notes == "" {
		c.Notes = entry
		return
	}
	c.Notes = c.Notes + "\n" + entry
}
