package types

import "errors"

var (
	ErrMissingConfig      = errors.New("missing required configuration")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInvalidFunctionARN = errors.New("invalid function ARN")
	ErrReportGeneration   = errors.New("failed to generate cost report")
	ErrDelivery           = errors.New("failed to deliver cost report")
)
