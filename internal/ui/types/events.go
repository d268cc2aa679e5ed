package types

import "catchthatlemon/internal/app"

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventAction
	UIEventQuit
)

type ActionData struct {
	Action app.Action
}

func ActionEvent(a app.Action) UIEvent {
	return UIEvent{Type: UIEventAction, Payload: ActionData{Action: a}}
}
