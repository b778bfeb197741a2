package logger

import "go.uber.org/zap"

// New builds the application logger: human-readable in development,
// JSON to stdout everywhere else.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stdout"}
	return config.Build()
}
