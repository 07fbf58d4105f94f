package logic

import "github.com/pkg/errors"

var ErrUpstreamNotProvided = errors.New("upstream not provided")
