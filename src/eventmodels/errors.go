package eventmodels

import "errors"

var (
	ErrNoData = errors.New("no data returned for symbol")
)
