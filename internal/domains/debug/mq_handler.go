package debug

import (
	"bytes"
	"runtime/pprof"

	"github.com/nats-io/nats.go"

	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

type MQHandler struct{}

func NewMQHandler() *MQHandler {
	return new(MQHandler)
}

// DumpHeap returns a pprof heap profile of the running daemon.
func (h *MQHandler) DumpHeap(_ *nats.Msg) (resp any) {
	var buf bytes.Buffer
	if err := pprof.WriteHeapProfile(&buf); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewDataResponse(buf.Bytes())
}

// DumpGoroutines returns the stacks of all live goroutines. Useful for
// spotting a stuck supervision loop in the field.
func (h *MQHandler) DumpGoroutines(_ *nats.Msg) (resp any) {
	var buf bytes.Buffer
	if err := pprof.Lookup("goroutine").WriteTo(&buf, 1); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewDataResponse(buf.String())
}
