// Package job holds the define step of the new job form: the job name and
// its optional cron schedule.
package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/odpf/console/internal/models"
	"github.com/odpf/console/internal/utils"
)

const (
	nameMinLength = 3
	nameMaxLength = 30
)

var (
	errNameRequired = validation.NewError("validation_job_name_required", "Name is a required field")
	errNameTaken    = validation.NewError("validation_job_name_taken", "This name is already taken.")
	errInvalidCron  = validation.NewError("validation_job_cron_invalid", "Not a valid cron schedule")
)

// NameAvailabilityChecker asks the backend if a job name is free in an account
type NameAvailabilityChecker interface {
	IsJobNameAvailable(ctx context.Context, name, accountID string) (*models.IsJobNameAvailableResponse, error)
}

type DefineFormValues struct {
	JobName      string `json:"jobName"`
	CronSchedule string `json:"cronSchedule,omitempty"`
}

// DefineFormSchema validates DefineFormValues for a single account
type DefineFormSchema struct {
	account *models.Account
	checker NameAvailabilityChecker
}

func NewDefineFormSchema(account *models.Account, checker NameAvailabilityChecker) *DefineFormSchema {
	return &DefineFormSchema{
		account: account,
		checker: checker,
	}
}

// Validate trims the values in place and validates them. Field failures are
// returned as validation.Errors keyed by field, a failing availability call
// is returned as is.
func (s *DefineFormSchema) Validate(ctx context.Context, values *DefineFormValues) error {
	values.JobName = strings.TrimSpace(values.JobName)

	err := validation.ValidateStructWithContext(ctx, values,
		validation.Field(&values.JobName, s.nameRules()...),
		validation.Field(&values.CronSchedule, validation.By(validateCron)),
	)
	return unwrapInternal(err)
}

// ValidateJobName runs the job name rules alone, uniqueness included
func (s *DefineFormSchema) ValidateJobName(ctx context.Context, name string) error {
	err := validation.ValidateWithContext(ctx, strings.TrimSpace(name), s.nameRules()...)
	return unwrapInternal(err)
}

// ValidateCronSchedule accepts an empty schedule or a standard cron expression
func ValidateCronSchedule(schedule string) error {
	return validation.Validate(schedule, validation.By(validateCron))
}

func (s *DefineFormSchema) nameRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.ErrorObject(errNameRequired),
		validation.RuneLength(nameMinLength, nameMaxLength),
		validation.WithContext(s.checkNameUnique),
	}
}

func (s *DefineFormSchema) checkNameUnique(ctx context.Context, value interface{}) error {
	name, _ := value.(string)
	if name == "" || s.account == nil {
		return errNameTaken
	}
	resp, err := s.checker.IsJobNameAvailable(ctx, name, s.account.ID)
	if err != nil {
		return validation.NewInternalError(fmt.Errorf("error checking job name: %w", err))
	}
	if !resp.IsAvailable {
		return errNameTaken
	}
	return nil
}

func validateCron(value interface{}) error {
	schedule, _ := value.(string)
	if schedule == "" {
		return nil
	}
	if err := utils.CronIntervalValidator(schedule); err != nil {
		return errInvalidCron
	}
	return nil
}

func unwrapInternal(err error) error {
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return internal.InternalError()
	}
	return err
}
