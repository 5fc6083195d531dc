package sdk

import "errors"

var (
	errHostNilResponse      = errors.New("sdk: host returned no response")
	errTokenTransferFailed  = errors.New("sdk: token transfer failed")
	errNativeTransferFailed = errors.New("sdk: native currency transfer failed")
)
