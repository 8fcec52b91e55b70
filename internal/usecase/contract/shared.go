package usecasecontract

import "time"

// IAppLogger defines the logging interface used across usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetTokenExpiry() time.Duration
}

// IValidator defines programmatic validation checks.
type IValidator interface {
	ValidateEmail(email string) error
}
