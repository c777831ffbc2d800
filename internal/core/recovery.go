package core

import (
	"context"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
)

// SafeRun runs one stage of the pipeline and turns a panic into an error.
func SafeRun(ctx context.Context, log *zap.SugaredLogger, stage string, fn func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := string(debug.Stack())
			err = fmt.Errorf("stage %s panicked: %v", stage, r)

			log.Errorw("stage panic",
				"stage", stage,
				"panic", r,
				"stack", stack,
			)
		}
	}()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("stage %s not started: %w", stage, err)
	}
	return fn(ctx)
}
