// Package survey holds the onboarding questionnaire and checks submitted answers against it.
package survey

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestions []byte

const maxTextAnswerLen = 255

type QuestionType string

const (
	SingleChoice QuestionType = "single_choice"
	FreeText     QuestionType = "text"
)

type Question struct {
	ID       string       `yaml:"id" json:"id"`
	Text     string       `yaml:"text" json:"text"`
	Type     QuestionType `yaml:"type" json:"type"`
	Required bool         `yaml:"required" json:"required"`
	Options  []string     `yaml:"options" json:"options,omitempty"`
}

type Catalog struct {
	Version   int        `yaml:"version" json:"version"`
	Questions []Question `yaml:"questions" json:"questions"`
	index     map[string]*Question
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.New("parsing survey catalog error: " + err.Error())
	}
	c.index = make(map[string]*Question, len(c.Questions))
	for i := range c.Questions {
		q := &c.Questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("survey question #%d has no id", i+1)
		}
		if _, dup := c.index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate survey question %q", q.ID)
		}
		switch q.Type {
		case SingleChoice:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("survey question %q has no options", q.ID)
			}
		case FreeText:
		default:
			return nil, fmt.Errorf("survey question %q has unknown type %q", q.ID, q.Type)
		}
		c.index[q.ID] = q
	}
	return &c, nil
}

// Default is the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultQuestions)
}

// Validate checks a full submission: every answer refers to a known question at most once,
// choice answers are one of the options and no required question is skipped.
func (c *Catalog) Validate(answers []entity.SurveyAnswer) error {
	seen := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		q, ok := c.index[a.QuestionID]
		if !ok {
			return fmt.Errorf("%w: %q", errorvalues.ErrUnknownQuestion, a.QuestionID)
		}
		if _, dup := seen[a.QuestionID]; dup {
			return fmt.Errorf("%w: %q answered twice", errorvalues.ErrInvalidAnswer, a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
		answer := strings.TrimSpace(a.Answer)
		switch q.Type {
		case SingleChoice:
			if !slices.Contains(q.Options, answer) {
				return fmt.Errorf("%w: %q", errorvalues.ErrInvalidAnswer, a.QuestionID)
			}
		case FreeText:
			if utf8.RuneCountInString(answer) > maxTextAnswerLen {
				return fmt.Errorf("%w: %q is too long", errorvalues.ErrInvalidAnswer, a.QuestionID)
			}
		}
	}
	for _, q := range c.Questions {
		if _, ok := seen[q.ID]; q.Required && !ok {
			return fmt.Errorf("%w: %q", errorvalues.ErrMissingAnswer, q.ID)
		}
	}
	return nil
}
