package widget

import (
	"bytes"
	"encoding/json"
)

// Pair is one label/value entry of Values.
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Values is the ordered label -> value snapshot produced by a successful
// submission. Order follows the form's fields. The zero value is empty and
// ready to use.
type Values struct {
	labels []string
	values map[string]string
}

// Set adds or replaces label. New labels are appended at the end.
func (v *Values) Set(label, value string) {
	if v.values == nil {
		v.values = make(map[string]string)
	}
	if _, exists := v.values[label]; !exists {
		v.labels = append(v.labels, label)
	}
	v.values[label] = value
}

// Get returns the value stored for label.
func (v Values) Get(label string) (string, bool) {
	value, ok := v.values[label]
	return value, ok
}

// Len reports the number of entries.
func (v Values) Len() int {
	return len(v.labels)
}

// Keys returns the labels in order.
func (v Values) Keys() []string {
	if len(v.labels) == 0 {
		return nil
	}
	return append([]string(nil), v.labels...)
}

// Pairs returns the entries in order.
func (v Values) Pairs() []Pair {
	if len(v.labels) == 0 {
		return nil
	}
	out := make([]Pair, 0, len(v.labels))
	for _, label := range v.labels {
		out = append(out, Pair{Label: label, Value: v.values[label]})
	}
	return out
}

// Map returns an unordered copy.
func (v Values) Map() map[string]string {
	out := make(map[string]string, len(v.labels))
	for _, label := range v.labels {
		out[label] = v.values[label]
	}
	return out
}

// MarshalJSON encodes Values as an object whose keys keep field order.
func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range v.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(v.values[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
