package api

import (
	"context"

	"github.com/odpf/console/internal/models"
)

const (
	connectionService = "mgmt.v1alpha1.ConnectionService/"

	entityConnection = "connection"
)

func (c *Client) CreateConnection(ctx context.Context, req *models.CreateConnectionRequest) (*models.Connection, error) {
	var resp models.CreateConnectionResponse
	if err := c.call(ctx, connectionService+"CreateConnection", entityConnection, req, &resp); err != nil {
		return nil, err
	}
	return resp.Connection, nil
}

func (c *Client) CheckConnectionConfig(ctx context.Context, cfg *models.ConnectionConfig) (*models.CheckConnectionConfigResponse, error) {
	var resp models.CheckConnectionConfigResponse
	req := &models.CheckConnectionConfigRequest{ConnectionConfig: cfg}
	if err := c.call(ctx, connectionService+"CheckConnectionConfig", entityConnection, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetConnection(ctx context.Context, id string) (*models.Connection, error) {
	var resp models.GetConnectionResponse
	if err := c.call(ctx, connectionService+"GetConnection", entityConnection, &models.GetConnectionRequest{ID: id}, &resp); err != nil {
		return nil, err
	}
	return resp.Connection, nil
}

func (c *Client) IsConnectionNameAvailable(ctx context.Context, accountID, name string) (bool, error) {
	var resp models.IsConnectionNameAvailableResponse
	req := &models.IsConnectionNameAvailableRequest{AccountID: accountID, ConnectionName: name}
	if err := c.call(ctx, connectionService+"IsConnectionNameAvailable", entityConnection, req, &resp); err != nil {
		return false, err
	}
	return resp.IsAvailable, nil
}

func (c *Client) DeleteConnection(ctx context.Context, id string) error {
	return c.call(ctx, connectionService+"DeleteConnection", entityConnection, &models.DeleteConnectionRequest{ID: id}, nil)
}
