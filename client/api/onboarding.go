package api

import (
	"context"

	"github.com/odpf/console/internal/models"
)

const (
	userAccountService = "mgmt.v1alpha1.UserAccountService/"

	entityOnboarding = "onboarding"
)

func onboardingCacheKey(accountID string) string {
	return "onboarding:" + accountID
}

// GetAccountOnboardingConfig returns the cached onboarding config of the
// account, fetching it when the cache has no entry
func (c *Client) GetAccountOnboardingConfig(ctx context.Context, accountID string) (*models.AccountOnboardingConfig, error) {
	if cached, ok := c.cache.Get(onboardingCacheKey(accountID)); ok {
		if cfg, ok := cached.(models.AccountOnboardingConfig); ok {
			return &cfg, nil
		}
	}

	var resp models.GetAccountOnboardingConfigResponse
	req := &models.GetAccountOnboardingConfigRequest{AccountID: accountID}
	if err := c.call(ctx, userAccountService+"GetAccountOnboardingConfig", entityOnboarding, req, &resp); err != nil {
		return nil, err
	}
	if resp.Config != nil {
		c.cache.SetDefault(onboardingCacheKey(accountID), *resp.Config)
	}
	return resp.Config, nil
}

// SetAccountOnboardingConfig stores cfg and replaces the cached entry with
// the config the server returned
func (c *Client) SetAccountOnboardingConfig(ctx context.Context, accountID string, cfg *models.AccountOnboardingConfig) (*models.AccountOnboardingConfig, error) {
	var resp models.SetAccountOnboardingConfigResponse
	req := &models.SetAccountOnboardingConfigRequest{AccountID: accountID, Config: cfg}
	if err := c.call(ctx, userAccountService+"SetAccountOnboardingConfig", entityOnboarding, req, &resp); err != nil {
		return nil, err
	}
	if resp.Config != nil {
		c.cache.SetDefault(onboardingCacheKey(accountID), *resp.Config)
	}
	return resp.Config, nil
}
