// Package llm abstracts the text-completion backends used for document
// generation. An engine takes the assembled prompt and returns the raw reply
// plus the number of tokens the call consumed.
package llm

import (
	"context"
	"errors"
)

// Классы ошибок бэкенда. Движки заворачивают свои статусы в эти сентинелы,
// чтобы телеграм-слой мог показать осмысленный текст без ведения бухгалтерии.
var (
	ErrOverloaded = errors.New("llm: backend overloaded")
	ErrTooLarge   = errors.New("llm: reply exceeds size limits")
)

type Engine interface {
	Name() string
	GetModel() string
	// Complete выполняет один запрос. tokens — фактический расход по данным API.
	Complete(ctx context.Context, prompt string) (text string, tokens int, err error)
}
