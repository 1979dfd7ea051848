package dfttest

import (
	"context"
	"errors"
	"testing"

	"github.com/RyanBlaney/sonido-dfttest/dfttest/config"
	"github.com/RyanBlaney/sonido-dfttest/logging"
)

func TestBuildAll(t *testing.T) {
	luma := config.DefaultParams()
	chroma := config.DefaultParams()
	chroma.SBSize = 8
	chroma.SOSize = 4
	chroma.Sigma = 4

	ctx := logging.ContextWithFields(context.Background(), logging.Fields{"clip": "test"})
	descriptors, err := BuildAll(ctx, []config.Params{luma, chroma, luma})
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}

	if len(descriptors) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(descriptors))
	}
	if descriptors[0].BlockSize() != 16 || descriptors[1].BlockSize() != 8 || descriptors[2].BlockSize() != 16 {
		t.Errorf("order not kept: %d, %d, %d",
			descriptors[0].BlockSize(), descriptors[1].BlockSize(), descriptors[2].BlockSize())
	}
}

func TestBuildAllError(t *testing.T) {
	bad := config.DefaultParams()
	bad.TWin = 42

	_, err := BuildAll(context.Background(), []config.Params{config.DefaultParams(), bad})
	if !errors.Is(err, config.ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}
}

func TestBuildAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := BuildAll(ctx, []config.Params{config.DefaultParams()}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
