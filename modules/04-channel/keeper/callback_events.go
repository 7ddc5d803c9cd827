package keeper

import (
	"github.com/cosmosnet/ibc-core-engine/host"
	porttypes "github.com/cosmosnet/ibc-core-engine/modules/05-port/types"
)

// emitCallbackEvents appends a module callback's extra events to the
// transaction output, converting the application's plain string-map
// attributes into the core's structured Attribute form (spec §4.4 "execute
// callbacks may return extra events and log lines appended to the emitted
// transaction output").
func emitCallbackEvents(h host.WriteHost, extras []porttypes.CallbackEvent) {
	for _, e := range extras {
		attrs := make([]host.Attribute, 0, len(e.Attributes))
		for k, v := range e.Attributes { //nolint:deterministicmaplint
			attrs = append(attrs, host.Attribute{Key: k, Value: v})
		}
		h.EmitEvent(host.NewEvent(e.Type, attrs...))
	}
}
