package slacktools

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachment_Build(t *testing.T) {
	a := Attachment{
		Color:  "good",
		Header: "living room",
		Body: []string{
			"current: 19.5ºC",
			"target: 20.0ºC",
		},
	}

	attachment := a.Build()
	assert.Equal(t, "good", attachment.Color)
	assert.Equal(t, "living room", attachment.Fallback)
	require.Len(t, attachment.Blocks.BlockSet, 1)

	b, ok := attachment.Blocks.BlockSet[0].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*"+a.Header+"*", b.Text.Text)
	require.Len(t, b.Fields, len(a.Body))
	for i, l := range b.Fields {
		assert.Equal(t, a.Body[i], l.Text)
	}
}
