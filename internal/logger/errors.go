package logger

import "errors"

// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
var ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")
