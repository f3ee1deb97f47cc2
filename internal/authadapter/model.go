package authadapter

import (
	"fmt"

	"github.com/khitstore/khit-backend/internal/domain"
)

// Model names one of the auth storage tables. The set is closed; operations
// reject anything else before touching the store.
type Model string

const (
	ModelUsers              Model = "authUsers"
	ModelSessions           Model = "authSessions"
	ModelAccounts           Model = "authAccounts"
	ModelVerificationTokens Model = "authVerificationTokens"
)

var knownModels = map[Model]struct{}{
	ModelUsers:              {},
	ModelSessions:           {},
	ModelAccounts:           {},
	ModelVerificationTokens: {},
}

// ParseModel validates a model name coming from the wire.
func ParseModel(raw string) (Model, error) {
	model := Model(raw)
	if _, ok := knownModels[model]; !ok {
		return "", fmt.Errorf("unknown auth model %q: %w", raw, domain.ErrValidation)
	}
	return model, nil
}

func (m Model) Valid() bool {
	_, ok := knownModels[m]
	return ok
}
