// MIT License
//
// Copyright (c) 2025 Mike Lane
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package pullrequest

import (
	"encoding/json"
	"math"
)

// Shape identifies which JSON layout a payload uses
type Shape int

const (
	// ShapeDirect is the REST API layout: pull request fields at the top level
	ShapeDirect Shape = iota
	// ShapeEvent is the webhook layout: pull request under "pull_request"
	ShapeEvent
)

// Pull request actions carried by webhook deliveries
const (
	ActionOpened      = "opened"
	ActionClosed      = "closed"
	ActionReopened    = "reopened"
	ActionSynchronize = "synchronize"
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case ShapeEvent:
		return "event"
	case ShapeDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// eventKeys are only present in webhook deliveries
var eventKeys = []string{"pull_request", "repository", "sender"}

// DetectShape reports ShapeEvent when any webhook-only key holds a value,
// ShapeDirect otherwise.
func DetectShape(data map[string]any) Shape {
	for _, key := range eventKeys {
		if data[key] != nil {
			return ShapeEvent
		}
	}
	return ShapeDirect
}

// object is a decoded JSON object. Lookups on a nil object, or of a value
// with an unexpected type, yield nil.
type object map[string]any

func (o object) object(key string) object {
	v, ok := o[key].(map[string]any)
	if !ok {
		return nil
	}
	return object(v)
}

func (o object) string(key string) *string {
	v, ok := o[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func (o object) isString(key, want string) bool {
	v, ok := o[key].(string)
	return ok && v == want
}

func (o object) int(key string) *int {
	var f float64
	switch v := o[key].(type) {
	case float64:
		f = v
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil
		}
		i := int(n)
		return &i
	default:
		return nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return nil
	}
	n := int(f)
	return &n
}
