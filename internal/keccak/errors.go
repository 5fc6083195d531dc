package keccak

import "errors"

var errBadLength = errors.New("keccak: hash must be exactly 32 bytes")
