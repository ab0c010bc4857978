package connection

import "github.com/odpf/console/internal/models"

// nextOnboardingConfig marks the connection just created. The first one
// counts as the source, any later one as the destination. A missing stored
// config marks every step done.
func nextOnboardingConfig(stored *models.AccountOnboardingConfig) *models.AccountOnboardingConfig {
	if stored == nil {
		return &models.AccountOnboardingConfig{
			HasCreatedSourceConnection:      true,
			HasCreatedDestinationConnection: true,
			HasCreatedJob:                   true,
			HasInvitedMembers:               true,
		}
	}
	if stored.HasCreatedSourceConnection {
		return &models.AccountOnboardingConfig{
			HasCreatedSourceConnection:      true,
			HasCreatedDestinationConnection: true,
			HasCreatedJob:                   stored.HasCreatedJob,
			HasInvitedMembers:               stored.HasInvitedMembers,
		}
	}
	return &models.AccountOnboardingConfig{
		HasCreatedSourceConnection:      true,
		HasCreatedDestinationConnection: stored.HasCreatedSourceConnection,
		HasCreatedJob:                   stored.HasCreatedJob,
		HasInvitedMembers:               stored.HasInvitedMembers,
	}
}
