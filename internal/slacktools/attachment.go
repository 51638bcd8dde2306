package slacktools

import "github.com/slack-go/slack"

// Attachment renders a header and a list of lines as a single section block.
type Attachment struct {
	Color  string
	Header string
	Body   []string
}

// Build returns the slack.Attachment for the Attachment. The header doubles as the notification's fallback text.
func (t Attachment) Build() slack.Attachment {
	return slack.Attachment{
		Color:    t.Color,
		Fallback: t.Header,
		Blocks:   slack.Blocks{BlockSet: []slack.Block{t.build()}},
	}
}

func (t Attachment) build() *slack.SectionBlock {
	lines := make([]*slack.TextBlockObject, len(t.Body))
	for i, line := range t.Body {
		lines[i] = slack.NewTextBlockObject(slack.MarkdownType, line, false, false)
	}
	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, "*"+t.Header+"*", false, false),
		lines,
		nil,
	)
}
