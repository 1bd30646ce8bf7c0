package upstream

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/lanreach/wifi-extender-agent/internal/entities"
	"github.com/lanreach/wifi-extender-agent/internal/mq"
)

type (
	IOrchestratorService interface {
		SetUpstreamProfile(profile entities.UpstreamProfile) (err error)
	}

	MQHandler struct {
		connectionService   *Service
		orchestratorService IOrchestratorService
	}
)

func NewMQHandler(connectionService *Service, orchestratorService IOrchestratorService) *MQHandler {
	return &MQHandler{
		connectionService:   connectionService,
		orchestratorService: orchestratorService,
	}
}

// Scan runs one finite scan pass and returns discovered networks.
func (h *MQHandler) Scan(_ *nats.Msg) (resp any) {
	results, err := h.connectionService.Scan(context.Background())
	if err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewDataResponse(struct {
		Networks []entities.ScanResult `json:"networks"`
		Table    string                `json:"table"`
	}{
		Networks: results,
		Table:    FormatScanResultsToTable(results),
	})
}

// Connect stores a new upstream profile; the reconciliation loop picks
// it up and drives the association.
func (h *MQHandler) Connect(m *nats.Msg) (resp any) {
	var requestBody struct {
		Profile entities.UpstreamProfile `json:"profile"`
	}
	if err := json.Unmarshal(m.Data, &requestBody); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	if err := h.orchestratorService.SetUpstreamProfile(requestBody.Profile); err != nil {
		return mq.NewBadRequestResponse(err.Error())
	}

	return mq.NewOkResponse()
}

// Disconnect drops the current association without touching the stored
// profile or the goal.
func (h *MQHandler) Disconnect(_ *nats.Msg) (resp any) {
	if err := h.connectionService.Disconnect(); err != nil {
		return mq.NewInternalErrorResponse(err.Error())
	}

	return mq.NewOkResponse()
}
