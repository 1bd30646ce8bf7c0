package accesspoint

import (
	"encoding/json"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

// Handler serves access point commands over the GUI websocket.
type Handler struct {
	apService           *Service
	orchestratorService IOrchestratorService
}

func NewHandler(apService *Service, orchestratorService IOrchestratorService) *Handler {
	return &Handler{
		apService:           apService,
		orchestratorService: orchestratorService,
	}
}

func (h *Handler) SetProfile(body json.RawMessage) (resp any) {
	var requestBody struct {
		Profile entities.APProfile `json:"profile"`
	}
	if err := json.Unmarshal(body, &requestBody); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	if err := h.orchestratorService.SetAPProfile(requestBody.Profile); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	return mq.NewOkResponse()
}

func (h *Handler) FetchClients(_ json.RawMessage) (resp any) {
	return mq.NewDataResponse(struct {
		Clients []entities.ClientRecord `json:"clients"`
	}{
		Clients: h.apService.Clients(),
	})
}
