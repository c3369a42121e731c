package setup

import (
	"context"

	"github.com/bornholm/corpus-asana/internal/config"
	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/core/service"
	"github.com/pkg/errors"
)

func NewTaskLoaderFromConfig(ctx context.Context, conf *config.Config, id string, kind model.IDKind) (*service.TaskLoader, error) {
	source, err := NewTaskSourceFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	loader, err := service.NewTaskLoader(source, id, kind)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return loader, nil
}
