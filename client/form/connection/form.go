package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/odpf/salt/log"

	"github.com/odpf/console/internal/models"
)

var ErrNoAccount = errors.New("no account selected, set account.id in the config")

// ConnectionService is the subset of the api the postgres form calls
type ConnectionService interface {
	NameAvailabilityChecker
	CreateConnection(ctx context.Context, req *models.CreateConnectionRequest) (*models.Connection, error)
	CheckConnectionConfig(ctx context.Context, cfg *models.ConnectionConfig) (*models.CheckConnectionConfigResponse, error)
	GetConnection(ctx context.Context, id string) (*models.Connection, error)
}

type OnboardingService interface {
	GetAccountOnboardingConfig(ctx context.Context, accountID string) (*models.AccountOnboardingConfig, error)
	SetAccountOnboardingConfig(ctx context.Context, accountID string, cfg *models.AccountOnboardingConfig) (*models.AccountOnboardingConfig, error)
}

// TestResult is the outcome of a test connection request
type TestResult struct {
	Response *models.CheckConnectionConfigResponse
	// OpenPermissionDialog is set only when the database was reached
	OpenPermissionDialog bool
}

// ErrorMessage describes why the connection failed, empty when it succeeded
func (r *TestResult) ErrorMessage() string {
	if r == nil || r.Response == nil || r.Response.IsConnected {
		return ""
	}
	if r.Response.ConnectionError != nil {
		return *r.Response.ConnectionError
	}
	return "no error returned"
}

type SubmitOptions struct {
	// ReturnTo overrides where the user goes after a successful submit
	ReturnTo string
}

type SubmitResult struct {
	Connection *models.Connection
	RedirectTo string
}

// PostgresForm holds the state of one postgres connection form
type PostgresForm struct {
	logger      log.Logger
	account     *models.Account
	connections ConnectionService
	onboarding  OnboardingService
	schema      *PostgresFormSchema

	// values belong to the goroutine driving the form, mu guards the tab
	// and test state only
	values PostgresFormValues

	mu        sync.Mutex
	activeTab ActiveTab
	testing   bool
	lastTest  *TestResult
}

func NewPostgresForm(logger log.Logger, account *models.Account, connections ConnectionService, onboarding OnboardingService) *PostgresForm {
	return &PostgresForm{
		logger:      logger,
		account:     account,
		connections: connections,
		onboarding:  onboarding,
		schema:      NewPostgresFormSchema(account, connections),
		values:      DefaultPostgresFormValues(),
		activeTab:   ActiveTabURL,
	}
}

// Values returns the live values, callers edit them in place from the
// goroutine driving the form
func (f *PostgresForm) Values() *PostgresFormValues {
	return &f.values
}

func (f *PostgresForm) ActiveTab() ActiveTab {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.activeTab
}

// SetActiveTab switches mode. Values of the other mode are kept but ignored.
func (f *PostgresForm) SetActiveTab(tab ActiveTab) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.activeTab = tab
}

func (f *PostgresForm) IsTesting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.testing
}

// LastTest returns the latest test connection result, nil before any test
func (f *PostgresForm) LastTest() *TestResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastTest
}

func (f *PostgresForm) Validate(ctx context.Context) error {
	return f.schema.Validate(ctx, &f.values, f.ActiveTab())
}

func (f *PostgresForm) ValidateConnectionName(ctx context.Context, name string) error {
	return f.schema.ValidateConnectionName(ctx, name)
}

// ConnectionConfig builds the config for the current values and mode
func (f *PostgresForm) ConnectionConfig() *models.ConnectionConfig {
	return BuildConnectionConfigPostgres(f.values, f.ActiveTab())
}

// TestConnection checks the current values against the backend without
// validating them first. A failed request is reported as a failed connection.
func (f *PostgresForm) TestConnection(ctx context.Context) *TestResult {
	f.mu.Lock()
	f.testing = true
	f.mu.Unlock()

	resp, err := f.connections.CheckConnectionConfig(ctx, f.ConnectionConfig())
	if err != nil {
		msg := err.Error()
		resp = &models.CheckConnectionConfigResponse{
			IsConnected:     false,
			ConnectionError: &msg,
		}
	}
	result := &TestResult{
		Response:             resp,
		OpenPermissionDialog: resp.IsConnected,
	}

	f.mu.Lock()
	f.testing = false
	f.lastTest = result
	f.mu.Unlock()
	return result
}

// Submit validates the values, creates the connection and records the
// onboarding progress. Onboarding failures are logged and do not fail the submit.
func (f *PostgresForm) Submit(ctx context.Context, opts SubmitOptions) (*SubmitResult, error) {
	if f.account == nil {
		return nil, ErrNoAccount
	}
	if err := f.Validate(ctx); err != nil {
		return nil, err
	}

	conn, err := f.connections.CreateConnection(ctx, &models.CreateConnectionRequest{
		AccountID:        f.account.ID,
		Name:             f.values.ConnectionName,
		ConnectionConfig: f.ConnectionConfig(),
	})
	if err != nil {
		f.logger.Error("Unable to create connection!", "description", err.Error())
		return nil, err
	}
	f.logger.Info("Successfully created connection!")

	f.updateOnboarding(ctx)

	return &SubmitResult{
		Connection: conn,
		RedirectTo: f.redirectTarget(conn, opts.ReturnTo),
	}, nil
}

func (f *PostgresForm) updateOnboarding(ctx context.Context) {
	stored, err := f.onboarding.GetAccountOnboardingConfig(ctx, f.account.ID)
	if err != nil {
		f.logger.Debug("unable to read onboarding config", "error", err.Error())
		stored = nil
	}
	if _, err := f.onboarding.SetAccountOnboardingConfig(ctx, f.account.ID, nextOnboardingConfig(stored)); err != nil {
		f.logger.Error("Unable to update onboarding status!", "description", err.Error())
	}
}

func (f *PostgresForm) redirectTarget(conn *models.Connection, returnTo string) string {
	if returnTo != "" {
		return returnTo
	}
	if conn != nil && conn.ID != "" {
		return fmt.Sprintf("/%s/connections/%s", f.account.Name, conn.ID)
	}
	return fmt.Sprintf("/%s/connections", f.account.Name)
}

// LoadClone prefills the form from the connection sourceID. Non postgres
// connections leave the form unchanged.
func (f *PostgresForm) LoadClone(ctx context.Context, sourceID string) error {
	if sourceID == "" {
		return nil
	}
	conn, err := f.connections.GetConnection(ctx, sourceID)
	if err != nil {
		f.logger.Error("Unable to retrieve connection data for clone!", "description", err.Error())
		return err
	}

	values, tab, ok := ValuesFromConnection(f.values, f.ActiveTab(), conn)
	if !ok {
		f.logger.Debug("clone source is not a postgres connection, ignoring", "id", sourceID)
		return nil
	}
	f.values = values
	f.SetActiveTab(tab)
	return nil
}
