package payslip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// RemoteSource fetches the authoritative statement from the central payroll
// endpoint. A nil statement with a nil error means the server has no payslip
// for that employee and month, which is a normal answer.
type RemoteSource interface {
	FetchStatement(ctx context.Context, salonID, employeeID string, month, year int) (*RemoteStatement, error)
}

type httpRemoteSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPRemoteSource(baseURL string, timeout time.Duration) RemoteSource {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpRemoteSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  zap.L().Named("payslip.remote"),
	}
}

func (s *httpRemoteSource) FetchStatement(
	ctx context.Context,
	salonID, employeeID string,
	month, year int,
) (*RemoteStatement, error) {
	url := fmt.Sprintf(
		"%s/payslips/%s?salon_id=%s&month=%d&year=%d",
		s.baseURL, employeeID, salonID, month, year,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		return nil, nil
	default:
		return nil, fmt.Errorf("remote payslip endpoint returned %d", resp.StatusCode)
	}

	var remote RemoteStatement
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("decode remote payslip: %w", err)
	}

	return &remote, nil
}
