package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEducationTopics(t *testing.T) {
	t.Parallel()

	topics := EducationTopics()
	require.Len(t, topics, 6)

	seen := map[string]struct{}{}
	for _, topic := range topics {
		require.NotEmpty(t, topic.Title)
		require.NotEmpty(t, topic.Icon)
		require.NotEmpty(t, topic.FAQs, "every topic carries at least one FAQ")
		_, dup := seen[topic.Title]
		require.False(t, dup, "topic titles must be unique")
		seen[topic.Title] = struct{}{}
	}
}
