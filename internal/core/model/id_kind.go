package model

import (
	"strings"

	"github.com/pkg/errors"
)

// IDKind tells what an Asana identifier refers to.
type IDKind string

const (
	IDKindProject   IDKind = "project"
	IDKindWorkspace IDKind = "workspace"
)

var ErrInvalidIDKind = errors.New("invalid id kind")

func (k IDKind) Valid() bool {
	switch k {
	case IDKindProject, IDKindWorkspace:
		return true
	default:
		return false
	}
}

func (k IDKind) String() string {
	return string(k)
}

func ParseIDKind(raw string) (IDKind, error) {
	kind := IDKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", errors.Wrapf(ErrInvalidIDKind, "'%s' must be either '%s' or '%s'", raw, IDKindProject, IDKindWorkspace)
	}

	return kind, nil
}
