package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/odpf/console/internal/models"
)

const (
	jobNameAvailablePath = "/api/jobs/is-job-name-available"
	deleteJobProcedure   = "mgmt.v1alpha1.JobService/DeleteJob"
)

// IsJobNameAvailable asks the console whether name is still free within the account
func (c *Client) IsJobNameAvailable(ctx context.Context, name, accountID string) (*models.IsJobNameAvailableResponse, error) {
	query := url.Values{}
	query.Set("name", name)
	query.Set("accountId", accountID)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+jobNameAvailablePath+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.do(request)
	if err != nil {
		return nil, fmt.Errorf("error checking job name availability: %w", err)
	}
	defer response.Body.Close()

	decoder := json.NewDecoder(response.Body)
	if response.StatusCode < 200 || response.StatusCode > 299 {
		var body errorBody
		if err := decoder.Decode(&body); err != nil {
			return nil, fmt.Errorf("error decoding error response with status %d: %w", response.StatusCode, err)
		}
		return nil, errors.New(body.Message)
	}

	var availability models.IsJobNameAvailableResponse
	if err := decoder.Decode(&availability); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	return &availability, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.call(ctx, deleteJobProcedure, "job", &models.DeleteJobRequest{ID: id}, nil)
}
