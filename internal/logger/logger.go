// README: Zap logger construction, production or development encoding by env.
package logger

import (
	"go.uber.org/zap"
)

// New builds a named zap logger. env "production" selects the JSON
// production config, anything else the human-readable development one.
func New(env, name string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
