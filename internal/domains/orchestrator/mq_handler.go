package orchestrator

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

type MQHandler struct {
	orchestratorService *Service
}

func NewMQHandler(orchestratorService *Service) *MQHandler {
	return &MQHandler{
		orchestratorService: orchestratorService,
	}
}

// SetGoal updates the operator goal.
func (h *MQHandler) SetGoal(m *nats.Msg) (resp any) {
	var requestBody struct {
		Goal entities.ExtenderGoal `json:"goal"`
	}
	if err := json.Unmarshal(m.Data, &requestBody); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	switch requestBody.Goal {
	case entities.GoalStopped, entities.GoalExtending:
	default:
		return mq.NewBadRequestResponse("goal must be stopped or extending")
	}

	if err := h.orchestratorService.SetGoal(requestBody.Goal); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewOkResponse()
}

// GetStatus returns the full status snapshot.
func (h *MQHandler) GetStatus(_ *nats.Msg) (resp any) {
	snapshot, err := h.orchestratorService.Snapshot()
	if err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewDataResponse(snapshot)
}

// ManualRetry exits a terminal degraded condition.
func (h *MQHandler) ManualRetry(_ *nats.Msg) (resp any) {
	if err := h.orchestratorService.ManualRetry(); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewOkResponse()
}
