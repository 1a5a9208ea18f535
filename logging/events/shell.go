// Package events groups the trace points emitted around the shell's
// dispatch loop. Entries only reach the log when tracing is enabled via
// logging.SetTraceEnabled.
package events

import "github.com/pronix/okaara/logging"

type ShellTracer struct{}

type AppTracer struct{}

var (
	Shell = ShellTracer{}
	App   = AppTracer{}
)

func (ShellTracer) Dispatch(screenID, trigger string, argc int) {
	logging.Trace("shell.dispatch", map[string]interface{}{
		"screen":  screenID,
		"trigger": trigger,
		"argc":    argc,
	})
}

func (ShellTracer) UnknownTrigger(screenID, trigger string) {
	logging.Trace("shell.unknown-trigger", map[string]interface{}{
		"screen":  screenID,
		"trigger": trigger,
	})
}

func (ShellTracer) Transition(fromID, toID string) {
	logging.Trace("shell.transition", map[string]interface{}{
		"from": fromID,
		"to":   toID,
	})
}

func (ShellTracer) Render(screenID string, itemCount int) {
	logging.Trace("shell.render", map[string]interface{}{
		"screen": screenID,
		"items":  itemCount,
	})
}

func (ShellTracer) Stop(screenID string) {
	logging.Trace("shell.stop", map[string]interface{}{"screen": screenID})
}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
