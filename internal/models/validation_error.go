package models

import "strings"

// RequiredFieldsMessage is what the user sees when a commit is rejected.
const RequiredFieldsMessage = "Por favor, preencha os campos obrigatórios"

// ValidationError is returned when a draft is committed without its required fields.
type ValidationError struct {
	Fields []string `json:"fields"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return RequiredFieldsMessage
	}
	return RequiredFieldsMessage + ": " + strings.Join(e.Fields, ", ")
}
