package accesspoint

import (
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

type (
	IOrchestratorService interface {
		SetAPProfile(profile entities.APProfile) (err error)
	}

	MQHandler struct {
		apService           *Service
		orchestratorService IOrchestratorService
	}
)

func NewMQHandler(apService *Service, orchestratorService IOrchestratorService) *MQHandler {
	return &MQHandler{
		apService:           apService,
		orchestratorService: orchestratorService,
	}
}

// SetProfile stores a new AP profile; a running pair restarts with the
// new configuration on the next reconciliation step.
func (h *MQHandler) SetProfile(m *nats.Msg) (resp any) {
	var requestBody struct {
		Profile entities.APProfile `json:"profile"`
	}
	if err := json.Unmarshal(m.Data, &requestBody); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	if err := h.orchestratorService.SetAPProfile(requestBody.Profile); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	return mq.NewOkResponse()
}

// ListClients returns the merged client set.
func (h *MQHandler) ListClients(_ *nats.Msg) (resp any) {
	clients := h.apService.Clients()

	return mq.NewDataResponse(struct {
		Clients []entities.ClientRecord `json:"clients"`
		Table   string                  `json:"table"`
	}{
		Clients: clients,
		Table:   FormatClientsToTable(clients),
	})
}
