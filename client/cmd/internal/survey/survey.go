package survey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/afero"

	"github.com/odpf/console/internal/utils"
)

const (
	answerYes    = "Yes"
	answerNo     = "No"
	answerCancel = "Cancel"
)

// ErrCanceled is returned when the user aborts a survey
var ErrCanceled = errors.New("canceled by user")

var (
	validateNumber = utils.ValidatorFactory.NewFromRegex(`^\d+$`, "must be a positive number")
	validatePort   = survey.ComposeValidators(
		utils.ValidatorFactory.NewFromRegex(`^\d{1,5}$`, "must be a port number"),
		validateRange(1, 65535),
	)
)

func validateRange(min, max int) survey.Validator {
	return func(v interface{}) error {
		n, err := strconv.Atoi(fmt.Sprint(v))
		if err != nil {
			return err
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

// AskToConfirm asks a yes/no question, ctrl-c counts as no
func AskToConfirm(message string, defaultYes bool) (bool, error) {
	defaultAnswer := answerNo
	if defaultYes {
		defaultAnswer = answerYes
	}
	var answer string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: []string{answerYes, answerNo},
		Default: defaultAnswer,
	}, &answer)
	if err != nil {
		return false, translateErr(err)
	}
	return answer == answerYes, nil
}

func askInput(message, defaultValue, help string, validators ...survey.Validator) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: defaultValue,
		Help:    help,
	}, &answer, survey.WithValidator(survey.ComposeValidators(validators...)))
	return strings.TrimSpace(answer), translateErr(err)
}

func askPassword(message, help string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Password{
		Message: message,
		Help:    help,
	}, &answer)
	return answer, translateErr(err)
}

func askInt32(message string, defaultValue int32, validators ...survey.Validator) (int32, error) {
	raw, err := askInput(message, strconv.Itoa(int(defaultValue)), "", validators...)
	if err != nil {
		return 0, err
	}
	return parseInt32(raw)
}

func parseInt32(raw string) (int32, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", raw, err)
	}
	return int32(n), nil
}

// readOptionalFile returns the content of path, empty when no path is given
func readOptionalFile(fs afero.Fs, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("error reading [%s]: %w", path, err)
	}
	return string(content), nil
}

func validateFileExists(fs afero.Fs) survey.Validator {
	return func(v interface{}) error {
		path := strings.TrimSpace(fmt.Sprint(v))
		if path == "" {
			return nil
		}
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("file [%s] does not exist", path)
		}
		return nil
	}
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrCanceled
	}
	return err
}
