// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// MedicationRecord is one decoded CSV data row: a mapping from a column
// header to the raw cell value. Values are never coerced to other types.
//
// The record remembers the column order of the CSV header so that its JSON
// form lists keys in the same order as the source file.
type MedicationRecord struct {
	keys   []string
	values map[string]string
}

// NewMedicationRecord builds a record from an ordered list of header names
// and the matching values map. keys must not contain duplicates.
func NewMedicationRecord(keys []string, values map[string]string) MedicationRecord {
	return MedicationRecord{keys: keys, values: values}
}

// Get returns the value stored under header and whether the header exists.
func (m MedicationRecord) Get(header string) (string, bool) {
	v, ok := m.values[header]
	return v, ok
}

// Keys returns the header names of the record in column order.
func (m MedicationRecord) Keys() []string {
	return m.keys
}

// Len returns the number of fields in the record.
func (m MedicationRecord) Len() int {
	return len(m.keys)
}

// Map returns a copy of the record as a plain map.
func (m MedicationRecord) Map() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the record as a JSON object keeping the header order.
func (m MedicationRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.values[k])
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

// MedicationList is the response body of the protected medications endpoint.
type MedicationList struct {
	// Count is the number of records in Items.
	Count int `json:"count"`

	// Items holds the decoded records in source order.
	Items []MedicationRecord `json:"items"`
}

// NewMedicationList wraps records into a [MedicationList], filling Count.
// A nil slice is replaced by an empty one so the JSON form is always "[]".
func NewMedicationList(records []MedicationRecord) MedicationList {
	if records == nil {
		records = []MedicationRecord{}
	}
	return MedicationList{Count: len(records), Items: records}
}

// CacheEntry is the single cached batch of medication records together with
// the wall-clock time it was fetched. An entry is always replaced as a whole.
type CacheEntry struct {
	Records   []MedicationRecord
	FetchedAt time.Time
}

// IsFresh reports whether the entry is younger than ttl at the moment now.
func (e CacheEntry) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}
