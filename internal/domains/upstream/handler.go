package upstream

import (
	"context"
	"encoding/json"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

// Handler serves upstream commands over the GUI websocket.
type Handler struct {
	connectionService   *Service
	orchestratorService IOrchestratorService
}

func NewHandler(connectionService *Service, orchestratorService IOrchestratorService) *Handler {
	return &Handler{
		connectionService:   connectionService,
		orchestratorService: orchestratorService,
	}
}

func (h *Handler) ScanNetworks(_ json.RawMessage) (resp any) {
	results, err := h.connectionService.Scan(context.Background())
	if err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewDataResponse(struct {
		Networks []entities.ScanResult `json:"networks"`
	}{
		Networks: results,
	})
}

func (h *Handler) Connect(body json.RawMessage) (resp any) {
	var requestBody struct {
		Profile entities.UpstreamProfile `json:"profile"`
	}
	if err := json.Unmarshal(body, &requestBody); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	if err := h.orchestratorService.SetUpstreamProfile(requestBody.Profile); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	return mq.NewOkResponse()
}
