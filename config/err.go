package config

import (
	"errors"

	"github.com/vigoux/rebf/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrConfigKey   = errors.New(f("unknown setting"))
	ErrConfigType  = errors.New(f("setting type"))
	ErrConfigValue = errors.New(f("setting value"))
)

// ErrConfig indicates the configuration script that failed.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("config %v %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
