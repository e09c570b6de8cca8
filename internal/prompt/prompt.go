// Package prompt abstracts the interactive terminal prompts the CLI uses, so
// command logic can be tested without a real terminal.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// MultiSelectConfig configures a multi-select prompt.
type MultiSelectConfig struct {
	Message  string
	Options  []string
	Defaults []string
	Help     string
	PageSize int
}

// Driver runs prompts. The survey-backed implementation is the default;
// tests substitute their own.
type Driver interface {
	MultiSelect(ctx context.Context, cfg MultiSelectConfig) ([]string, error)
}

type surveyDriver struct{}

// NewSurveyDriver returns the terminal-backed prompt driver.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

func (d *surveyDriver) MultiSelect(ctx context.Context, cfg MultiSelectConfig) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prompt := &survey.MultiSelect{
		Message: cfg.Message,
		Options: cfg.Options,
		Default: cfg.Defaults,
		Help:    cfg.Help,
	}
	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}
	var out []string
	if err := survey.AskOne(prompt, &out); err != nil {
		return nil, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
