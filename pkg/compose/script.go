package compose

import (
	"context"
	"fmt"
)

// ScriptDriver replays scripted answers in order. It backs tests and
// non-interactive rehearsals of composition flows. Answers rejected by a
// prompt validator are recorded in Infos and the next scripted answer is
// tried, mirroring how an interactive prompt re-asks.
type ScriptDriver struct {
	Inputs     []string
	Confirms   []bool
	Selections []int

	// Infos collects every informational message shown during the session.
	Infos []string

	inputPos   int
	confirmPos int
	selectPos  int
}

func (s *ScriptDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for {
		if s.inputPos >= len(s.Inputs) {
			return "", fmt.Errorf("compose: no scripted input for %q", cfg.Message)
		}
		out := s.Inputs[s.inputPos]
		s.inputPos++
		if cfg.Validator != nil {
			if err := cfg.Validator(out); err != nil {
				s.Infos = append(s.Infos, fmt.Sprintf("%s: %v", cfg.Message, err))
				continue
			}
		}
		return out, nil
	}
}

func (s *ScriptDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s.confirmPos >= len(s.Confirms) {
		return false, fmt.Errorf("compose: no scripted confirmation for %q", cfg.Message)
	}
	out := s.Confirms[s.confirmPos]
	s.confirmPos++
	return out, nil
}

func (s *ScriptDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.selectPos >= len(s.Selections) {
		return 0, fmt.Errorf("compose: no scripted selection for %q", cfg.Message)
	}
	out := s.Selections[s.selectPos]
	s.selectPos++
	return out, nil
}

func (s *ScriptDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Infos = append(s.Infos, msg)
	return nil
}
