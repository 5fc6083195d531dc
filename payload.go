package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"vestlock/internal/sdk"
)

///////////////////////////////////////////////////
// Conversions from/to json strings, mirroring the teacher's helpers.go
///////////////////////////////////////////////////

func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal %s\nInput data:%+v\nError: %v", objectType, v, err))
	}
	return string(b)
}

func FromJSON[T any](data string, objectType string) *T {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		sdk.Abort(fmt.Sprintf("failed to unmarshal %s\nInput data:%s\nError: %v", objectType, data, err))
	}
	return &v
}

func strptr(s string) *string { return &s }

// unwrapPayload guards against a nil or empty host-supplied payload
// pointer, the same front gate the teacher's unwrapPayload applies before
// any decode attempt.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		sdk.Abort(errMsg)
	}
	return *payload
}

// decodeAmountPayload parses a decimal-string amount field from a
// payload, used everywhere a *big.Int crosses the JSON boundary since
// json.Number loses precision above 2^53 and this engine's amounts run up
// to 2^200.
func decodeAmountPayload(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", s)
	}
	return x, nil
}

func mustDecodeAmount(s string) *big.Int {
	x, err := decodeAmountPayload(s)
	if err != nil {
		sdk.Abort(err.Error())
	}
	return x
}
