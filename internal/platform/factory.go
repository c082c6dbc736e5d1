package platform

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/coursenotes/pkg/adapters/fs"
	"github.com/aretw0/coursenotes/pkg/core"
)

// New creates a Service writing to the course directory at uri.
//
//	svc, err := platform.New("./intro-to-computers", platform.WithLogger(logger))
//
// The uri is adapter-specific (a directory path for 'fs').
func New(uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}

// Init builds the configured repository and runs its initialization.
// For the fs adapter this creates the course directory, or checks it exists
// when WithMustExist is set.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	var repo core.Repository
	switch o.adapter {
	case "fs":
		repo = initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

func initFS(path string, o *options) core.Repository {
	mustExist, _ := o.config["must_exist"].(bool)
	fileMode, _ := o.config["file_mode"].(os.FileMode)

	if o.logger != nil {
		o.logger.Debug("initializing fs adapter", "path", path, "must_exist", mustExist)
	}

	return fs.NewRepository(fs.Config{
		Path:      path,
		MustExist: mustExist,
		FileMode:  fileMode,
		Logger:    o.logger,
	})
}
