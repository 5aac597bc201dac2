package usecase

import "errors"

var ErrPersistence = errors.New("persistence error")
