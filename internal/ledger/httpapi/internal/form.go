package internal

import (
	"finance-tracker/internal/ledger/usecases"
)

type FormResponse struct {
	Context string          `json:"context"`
	Inputs  []InputResponse `json:"inputs"`
}

type InputResponse struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Choices  []string `json:"choices,omitempty"`
}

func ToFormResponse(form usecases.FormView) FormResponse {
	inputs := make([]InputResponse, len(form.Inputs))
	for i, input := range form.Inputs {
		inputs[i] = InputResponse{
			Key:      input.Key.String(),
			Label:    input.Label,
			Kind:     string(input.Kind),
			Required: input.Required,
			Choices:  input.Choices,
		}
	}
	return FormResponse{Context: form.Context.String(), Inputs: inputs}
}
