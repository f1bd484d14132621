package coverage

import "github.com/go-logr/logr"

var internalLogger = logr.Discard()

func SetLogger(logger logr.Logger) {
	internalLogger = logger.WithName("coverage")
}
