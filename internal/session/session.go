// Package session replays scripted toolbar presses against a starting text.
//
// A session file is YAML:
//
//	text: "hello world"
//	steps:
//	  - command: bold
//	    start: 0
//	    end: 5
//	  - insert: "!"
//	  - command: italic
//
// Steps without start and end act at the caret left by the previous step.
package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/gerunddev/composer/internal/format"
	"github.com/gerunddev/composer/internal/logger"
	"gopkg.in/yaml.v3"
)

// Session is a starting text and the steps applied to it
type Session struct {
	Text  string `yaml:"text"`
	Caret int    `yaml:"caret,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step is one toolbar press or one typed insertion
type Step struct {
	Command format.Command `yaml:"command,omitempty"`
	Insert  string         `yaml:"insert,omitempty"`
	Start   *int           `yaml:"start,omitempty"`
	End     *int           `yaml:"end,omitempty"`
}

// StepResult records the state after a step ran
type StepResult struct {
	Index     int
	Step      Step
	Selection format.Selection
	Result    format.Result
	Skipped   bool
}

// Outcome is the result of running a whole session
type Outcome struct {
	Steps   []StepResult
	Final   format.Result
	Skipped int
}

// Parse decodes a session from YAML
func Parse(data []byte) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	for i, step := range s.Steps {
		if step.Command == "" && step.Insert == "" {
			return nil, fmt.Errorf("step %d: needs a command or insert", i+1)
		}
		if step.Command != "" && step.Insert != "" {
			return nil, fmt.Errorf("step %d: command and insert are exclusive", i+1)
		}
	}
	return &s, nil
}

// Load reads a session file
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// selection resolves the step range against the current caret
func (st Step) selection(caret int) format.Selection {
	sel := format.Caret(caret)
	if st.Start != nil {
		sel = format.Caret(*st.Start)
	}
	if st.End != nil {
		sel.End = *st.End
	}
	return sel
}

// Run applies every step in order. Unknown commands are logged and leave
// the text and caret as they were.
func Run(f *format.Formatter, s *Session, log *logger.Logger) Outcome {
	current := format.Result{Text: s.Text, Caret: s.Caret}
	out := Outcome{Steps: make([]StepResult, 0, len(s.Steps))}

	for i, step := range s.Steps {
		sel := step.selection(current.Caret)
		sr := StepResult{Index: i + 1, Step: step, Selection: sel}

		if step.Insert != "" {
			current = format.Insert(current.Text, sel, step.Insert)
		} else {
			res, err := f.Apply(current.Text, sel, step.Command)
			if errors.Is(err, format.ErrUnknownFormat) {
				log.UnknownFormat(string(step.Command))
				sr.Skipped = true
				out.Skipped++
			}
			// Unknown commands return the text unchanged, caret at the selection end
			current = res
		}

		sr.Result = current
		log.SessionStep(sr.Index, stepName(step), current.Caret)
		out.Steps = append(out.Steps, sr)
	}

	out.Final = current
	return out
}

func stepName(st Step) string {
	if st.Insert != "" {
		return "insert"
	}
	return string(st.Command)
}
