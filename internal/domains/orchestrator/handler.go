package orchestrator

import (
	"encoding/json"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

// Handler serves the orchestrator commands over the GUI websocket.
type Handler struct {
	orchestratorService *Service
}

func NewHandler(orchestratorService *Service) *Handler {
	return &Handler{
		orchestratorService: orchestratorService,
	}
}

func (h *Handler) SetGoal(body json.RawMessage) (resp any) {
	var requestBody struct {
		Goal entities.ExtenderGoal `json:"goal"`
	}
	if err := json.Unmarshal(body, &requestBody); err != nil {
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

func (h *Handler) GetStatus(_ json.RawMessage) (resp any) {
	snapshot, err := h.orchestratorService.Snapshot()
	if err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewDataResponse(snapshot)
}

func (h *Handler) ManualRetry(_ json.RawMessage) (resp any) {
	if err := h.orchestratorService.ManualRetry(); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewOkResponse()
}
