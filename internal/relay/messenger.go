// ABOUTME: Outbound messaging contract the relay formats messages for
// ABOUTME: Implemented by the Telegram bridge, mocked in flow tests

package relay

import "context"

// Choice is one labeled button in an attached menu. Data is the opaque
// callback payload echoed back on selection.
type Choice struct {
	Label string
	Data  string
}

// Messenger sends formatted messages to a chat. Text supports the Telegram
// Markdown subset (bold, inline code). A non-empty menu is rendered as an
// inline keyboard, one Choice row per slice element.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string, menu [][]Choice) error
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error
}
