package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// VFactory builds prompt validators, name abbreviated so that
// the global implementation can be called 'ValidatorFactory'
type VFactory struct{}

// NewFromRegex returns a validator failing with message when val does not match re
func (*VFactory) NewFromRegex(re, message string) func(interface{}) error {
	regex := regexp.MustCompile(re)
	return func(v interface{}) error {
		k := reflect.ValueOf(v).Kind()
		if k != reflect.String {
			return fmt.Errorf("was expecting a string, got %s", k.String())
		}
		if !regex.MatchString(v.(string)) {
			return errors.New(message)
		}
		return nil
	}
}

var ValidatorFactory = new(VFactory)

const cronFieldCount = 5

var (
	cronParser     = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	cronFieldRegex = regexp.MustCompile(`^[0-9*,/-]+$`)
)

// CronIntervalValidator return a nil value when a valid cron string is passed,
// an empty string means no schedule and is valid. Only the five numeric
// fields are accepted, day of week allows both 0 and 7 for sunday.
func CronIntervalValidator(val interface{}) error {
	value, ok := val.(string)
	if !ok {
		return fmt.Errorf("invalid crontab entry, not a valid string")
	}
	if strings.TrimSpace(value) == "" {
		return nil
	}
	fields := strings.Fields(value)
	if len(fields) != cronFieldCount {
		return errors.Errorf("invalid crontab entry, expected %d fields, found %d", cronFieldCount, len(fields))
	}
	for _, field := range fields {
		if !cronFieldRegex.MatchString(field) {
			return errors.Errorf("invalid crontab entry, unsupported field %q", field)
		}
	}
	fields[cronFieldCount-1] = normalizeDayOfWeek(fields[cronFieldCount-1])
	if _, err := cronParser.Parse(strings.Join(fields, " ")); err != nil {
		return errors.Wrap(err, "invalid crontab entry")
	}
	return nil
}

// normalizeDayOfWeek maps a sunday written as 7 onto 6, the last day the
// parser accepts, so 7 alone and ranges like 0-7 or 5-7 still parse. Steps
// are left as is.
func normalizeDayOfWeek(field string) string {
	items := strings.Split(field, ",")
	for i, item := range items {
		bounds, step, hasStep := strings.Cut(item, "/")
		parts := strings.Split(bounds, "-")
		for j, part := range parts {
			if n, err := strconv.Atoi(part); err == nil && n == 7 {
				parts[j] = "6"
			}
		}
		items[i] = strings.Join(parts, "-")
		if hasStep {
			items[i] += "/" + step
		}
	}
	return strings.Join(items, ",")
}
