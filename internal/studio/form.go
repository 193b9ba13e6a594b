package studio

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

func newForm(in *Inputs) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Program Name").
				Placeholder("Go Bootcamp").
				Value(&in.ProgramName).
				Validate(required("Program Name")),
			huh.NewInput().
				Title("Target Audience").
				Placeholder("working engineers").
				Value(&in.TargetAudience).
				Validate(required("Target Audience")),
			huh.NewConfirm().
				Title("Localize for regional markets?").
				Value(&in.Localize),
		),
	)
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
