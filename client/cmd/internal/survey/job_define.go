package survey

import (
	"context"
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/odpf/console/client/form/job"
)

const petnameWords = 2

// JobDefineSurvey asks for the define step of a new job
type JobDefineSurvey struct {
	schema *job.DefineFormSchema
}

func NewJobDefineSurvey(schema *job.DefineFormSchema) *JobDefineSurvey {
	return &JobDefineSurvey{
		schema: schema,
	}
}

// SuggestJobName returns a readable random name within the job name limits
func SuggestJobName() string {
	return petname.Generate(petnameWords, "-")
}

// AskToDefineJob fills the missing values, validating each answer as it is given
func (j *JobDefineSurvey) AskToDefineJob(ctx context.Context, values *job.DefineFormValues) error {
	if values.JobName == "" {
		name, err := askInput("What is the job name?", SuggestJobName(),
			"It should be unique across the account",
			func(v interface{}) error {
				return j.schema.ValidateJobName(ctx, fmt.Sprint(v))
			})
		if err != nil {
			return err
		}
		values.JobName = name
	}

	if values.CronSchedule == "" {
		schedule, err := askInput("What is the schedule?", "",
			"A cron expression like 0 0 * * *, leave empty to run the job manually",
			func(v interface{}) error {
				return job.ValidateCronSchedule(fmt.Sprint(v))
			})
		if err != nil {
			return err
		}
		values.CronSchedule = schedule
	}
	return nil
}
