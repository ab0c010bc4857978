package models

// AccountOnboardingConfig tracks which setup checklist steps an account completed
type AccountOnboardingConfig struct {
	HasCreatedSourceConnection      bool `json:"hasCreatedSourceConnection"`
	HasCreatedDestinationConnection bool `json:"hasCreatedDestinationConnection"`
	HasCreatedJob                   bool `json:"hasCreatedJob"`
	HasInvitedMembers               bool `json:"hasInvitedMembers"`
}

type GetAccountOnboardingConfigRequest struct {
	AccountID string `json:"accountId"`
}

type GetAccountOnboardingConfigResponse struct {
	Config *AccountOnboardingConfig `json:"config,omitempty"`
}

type SetAccountOnboardingConfigRequest struct {
	AccountID string                   `json:"accountId"`
	Config    *AccountOnboardingConfig `json:"config"`
}

type SetAccountOnboardingConfigResponse struct {
	Config *AccountOnboardingConfig `json:"config,omitempty"`
}
