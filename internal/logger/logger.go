// Package logger builds the application zap logger.
package logger

import "go.uber.org/zap"

// New returns a production logger for the prod environment and a
// human-readable development logger otherwise.
func New(env string) (*zap.Logger, error) {
	if env == "prod" || env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
