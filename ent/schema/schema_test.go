package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivityEventColumns(t *testing.T) {
	var names []string
	for _, f := range (EventMixin{}).Fields() {
		names = append(names, f.Descriptor().Name)
	}
	for _, f := range (ActivityEvent{}).Fields() {
		names = append(names, f.Descriptor().Name)
	}
	assert.Equal(t, []string{"sequence", "timestamp", "session_id", "username", "kind", "detail"}, names)
}

func TestActivityEventIndexes(t *testing.T) {
	idx := (ActivityEvent{}).Indexes()
	if assert.Len(t, idx, 1) {
		assert.Equal(t, []string{"kind"}, idx[0].Descriptor().Fields)
	}
	assert.Len(t, (ActivityEvent{}).Mixin(), 1)
}
