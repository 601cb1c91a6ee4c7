package config

import "errors"

var ErrInputTooLong = errors.New("input too long")
