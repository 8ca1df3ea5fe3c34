// Package model holds the workflow aggregate: applications, answers,
// attachments, comments and the status state machine.
package model

import "strings"

// ValueType determines how an answer value is compared and tested for
// emptiness.
type ValueType string

const (
	ValueTypeText    ValueType = "TEXT"
	ValueTypeNumber  ValueType = "NUMBER"
	ValueTypeOptions ValueType = "OPTIONS"
	ValueTypeImage   ValueType = "IMAGE"
)

// Answer is the value a user gave for one componentId. OPTIONS values are a
// comma-separated set of tokens, each either a bare value or key=value.
type Answer struct {
	ID          int64     `json:"id"`
	ComponentID string    `json:"componentId"`
	Value       string    `json:"value"`
	ValueType   ValueType `json:"valueType"`
	User        *User     `json:"user,omitempty"`
}

func NewAnswer(id int64, componentID, value string, valueType ValueType) *Answer {
	return &Answer{ID: id, ComponentID: componentID, Value: value, ValueType: valueType}
}

// Empty reports whether the answer holds no value. For OPTIONS the value is
// empty when no token decodes to a non-empty value.
func (a *Answer) Empty() bool {
	if a.ValueType == ValueTypeOptions {
		for _, v := range a.optionValues() {
			if v != "" {
				return false
			}
		}
		return true
	}
	return a.Value == ""
}

// Matches reports whether the answer holds v. OPTIONS answers match when
// any decoded token value equals v; all other types compare exactly.
func (a *Answer) Matches(v string) bool {
	if a.ValueType == ValueTypeOptions {
		for _, decoded := range a.optionValues() {
			if decoded == v {
				return true
			}
		}
		return false
	}
	return a.Value == v
}

// optionValues decodes the OPTIONS token set. A key=value token decodes to
// the part after the first '='; a bare token decodes to itself.
func (a *Answer) optionValues() []string {
	if a.Value == "" {
		return nil
	}
	tokens := strings.Split(a.Value, ",")
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if idx := strings.Index(tok, "="); idx >= 0 {
			out = append(out, tok[idx+1:])
		} else {
			out = append(out, tok)
		}
	}
	return out
}

// HasOptionKey reports whether the OPTIONS token set contains a token whose
// key part (before the first '=', or the whole bare token) equals key.
func (a *Answer) HasOptionKey(key string) bool {
	if a.ValueType != ValueTypeOptions || a.Value == "" {
		return false
	}
	for _, tok := range strings.Split(a.Value, ",") {
		if idx := strings.Index(tok, "="); idx >= 0 {
			tok = tok[:idx]
		}
		if tok == key {
			return true
		}
	}
	return false
}

// EncodeOptions joins selected option tokens into an OPTIONS value.
func EncodeOptions(tokens []string) string {
	return strings.Join(tokens, ",")
}
