package validation

import (
	"encoding/json"
	"sort"
)

// MessageBag is a multimap of field name to validation failure messages.
// The zero value is not usable; create with NewMessageBag.
type MessageBag struct {
	messages map[string][]string
}

// NewMessageBag creates an empty message bag.
func NewMessageBag() *MessageBag {
	return &MessageBag{messages: make(map[string][]string)}
}

// Add appends a message for the given field.
func (b *MessageBag) Add(field, message string) {
	b.messages[field] = append(b.messages[field], message)
}

// Has reports whether the field has any messages.
func (b *MessageBag) Has(field string) bool {
	return len(b.messages[field]) > 0
}

// Get returns all messages for the field.
func (b *MessageBag) Get(field string) []string {
	return b.messages[field]
}

// First returns the first message for the field, or the first message of
// the first field (sorted) when called with no arguments via "".
func (b *MessageBag) First(field string) string {
	if field != "" {
		if msgs := b.messages[field]; len(msgs) > 0 {
			return msgs[0]
		}
		return ""
	}
	keys := b.Keys()
	if len(keys) == 0 {
		return ""
	}
	return b.messages[keys[0]][0]
}

// All returns the underlying field-to-messages map.
func (b *MessageBag) All() map[string][]string {
	return b.messages
}

// Keys returns the field names with messages, sorted.
func (b *MessageBag) Keys() []string {
	keys := make([]string, 0, len(b.messages))
	for k := range b.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsEmpty reports whether the bag holds no messages.
func (b *MessageBag) IsEmpty() bool {
	return len(b.messages) == 0
}

// Count returns the total number of messages across all fields.
func (b *MessageBag) Count() int {
	n := 0
	for _, msgs := range b.messages {
		n += len(msgs)
	}
	return n
}

// Merge copies all messages from other into the bag.
func (b *MessageBag) Merge(other *MessageBag) {
	if other == nil {
		return
	}
	for field, msgs := range other.messages {
		b.messages[field] = append(b.messages[field], msgs...)
	}
}

// MarshalJSON renders the bag as a field-to-messages object.
func (b *MessageBag) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.messages)
}
