package testutil

import (
	"fmt"

	tele "gopkg.in/telebot.v3"
)

// FakeContext is a tele.Context that records what handlers reply.
// Only the methods the handlers use are implemented, the rest panic.
type FakeContext struct {
	tele.Context

	FromUser      *tele.User
	InputText     string
	CallbackQuery *tele.Callback
	EditErr       error

	Sent      []string
	Edited    []string
	Replies   []string
	Markups   []*tele.ReplyMarkup
	Responses []*tele.CallbackResponse
	Responded int
}

// NewFakeMessage creates a context for a text message from userID
func NewFakeMessage(userID int64, text string) *FakeContext {
	return &FakeContext{
		FromUser:  &tele.User{ID: userID, FirstName: "Test"},
		InputText: text,
	}
}

// NewFakeCallback creates a context for an inline button press with raw callback data
func NewFakeCallback(userID int64, data string) *FakeContext {
	return &FakeContext{
		FromUser:      &tele.User{ID: userID, FirstName: "Test"},
		CallbackQuery: &tele.Callback{ID: "cb-1", Data: data},
	}
}

func (c *FakeContext) Sender() *tele.User {
	return c.FromUser
}

func (c *FakeContext) Text() string {
	return c.InputText
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.CallbackQuery
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, fmt.Sprint(what))
	c.Replies = append(c.Replies, fmt.Sprint(what))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Edit(what interface{}, opts ...interface{}) error {
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, fmt.Sprint(what))
	c.Replies = append(c.Replies, fmt.Sprint(what))
	c.recordMarkup(opts)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.Responded++
	c.Responses = append(c.Responses, resp...)
	return nil
}

func (c *FakeContext) recordMarkup(opts []interface{}) {
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			c.Markups = append(c.Markups, m)
		}
	}
}

// LastText returns the most recent sent or edited text
func (c *FakeContext) LastText() string {
	if len(c.Replies) == 0 {
		return ""
	}
	return c.Replies[len(c.Replies)-1]
}

// LastMarkup returns the most recent keyboard
func (c *FakeContext) LastMarkup() *tele.ReplyMarkup {
	if len(c.Markups) == 0 {
		return nil
	}
	return c.Markups[len(c.Markups)-1]
}

// ResponseTexts returns the toast texts of callback responses
func (c *FakeContext) ResponseTexts() []string {
	texts := make([]string, 0, len(c.Responses))
	for _, r := range c.Responses {
		texts = append(texts, r.Text)
	}
	return texts
}
