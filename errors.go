package skribbl

import (
	"errors"
	"fmt"
)

var errNoCache = errors.New("skribbl: no cache configured")

// ConfigError reports a session that could not start because of its
// configuration. Nothing has been drawn when it is returned.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("skribbl: invalid configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Err: err}
}
