package httpcheck

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	checkRetryCount = 2
	checkReqTimeout = time.Second * 5
	defaultCheckURL = "http://connectivity-check.ubuntu.com"
)

// Service probes a well-known endpoint to tell a working upstream link
// apart from one stuck behind a captive portal or broken gateway.
type Service struct {
	client   *resty.Client
	checkURL string
}

func NewService() *Service {
	client := resty.New().
		SetRetryCount(checkRetryCount).
		SetTimeout(checkReqTimeout)

	// do not hold connections open through a link that flaps
	client.OnBeforeRequest(func(c *resty.Client, r *resty.Request) error {
		r.SetHeader("Connection", "close")
		return nil
	})

	return &Service{
		client:   client,
		checkURL: defaultCheckURL,
	}
}

func (s *Service) CheckReachable() (reachable bool, err error) {
	resp, err := s.client.R().Get(s.checkURL)
	if err != nil {
		return false, fmt.Errorf("CheckReachable: %w", err)
	}

	return resp.StatusCode() == http.StatusNoContent || resp.StatusCode() == http.StatusOK, nil
}
