package handler

import (
	tele "gopkg.in/telebot.v3"
)

// fakeContext records what a handler shows for one update
type fakeContext struct {
	tele.Context
	userID    int64
	callback  *tele.Callback
	edited    []string
	sent      []string
	responded int
}

func newCallbackContext(userID int64, cb *tele.Callback) *fakeContext {
	return &fakeContext{userID: userID, callback: cb}
}

func (c *fakeContext) Sender() *tele.User       { return &tele.User{ID: c.userID} }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Edit(what interface{}, _ ...interface{}) error {
	c.edited = append(c.edited, what.(string))
	return nil
}

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what.(string))
	return nil
}

func (c *fakeContext) Respond(...*tele.CallbackResponse) error {
	c.responded++
	return nil
}
