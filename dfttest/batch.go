package dfttest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/RyanBlaney/sonido-dfttest/dfttest/config"
	"github.com/RyanBlaney/sonido-dfttest/logging"
)

// BuildAll designs one descriptor per parameter set concurrently, for
// example one per plane. The result keeps the input order. The first
// failure cancels the remaining builds.
func BuildAll(ctx context.Context, params []config.Params) ([]*Descriptor, error) {
	logger := logging.WithContext(ctx).WithFields(logging.Fields{
		"component": "filter_descriptor",
		"function":  "BuildAll",
		"count":     len(params),
	})

	descriptors := make([]*Descriptor, len(params))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range params {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := New(p)
			if err != nil {
				return fmt.Errorf("plane %d: %w", i, err)
			}
			descriptors[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error(err, "Failed to build descriptors")
		return nil, err
	}

	logger.Debug("Descriptors built")
	return descriptors, nil
}
