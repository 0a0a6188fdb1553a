// Package blockkit provides declarative builders for Slack Block Kit
// payloads. Builders are pure: they perform no I/O and omit optional
// fields entirely when no value is supplied.
package blockkit

import "github.com/slack-go/slack"

// Header returns a header block with emoji rendering enabled.
func Header(text string) *slack.HeaderBlock {
	return slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, text, true, false))
}

// Section returns a mrkdwn section block.
func Section(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(mrkdwn(text), nil, nil)
}

// SectionWithAccessory returns a mrkdwn section block with an
// interactive accessory element.
func SectionWithAccessory(text string, accessory slack.BlockElement) *slack.SectionBlock {
	return slack.NewSectionBlock(mrkdwn(text), nil, slack.NewAccessory(accessory))
}

// ButtonOption customizes a button element.
type ButtonOption func(*slack.ButtonBlockElement)

// WithValue attaches a value carried back on the interaction payload.
func WithValue(value string) ButtonOption {
	return func(b *slack.ButtonBlockElement) {
		b.Value = value
	}
}

// WithStyle sets the button style (primary or danger).
func WithStyle(style slack.Style) ButtonOption {
	return func(b *slack.ButtonBlockElement) {
		b.Style = style
	}
}

// WithURL makes the button open a link in addition to firing its
// action.
func WithURL(url string) ButtonOption {
	return func(b *slack.ButtonBlockElement) {
		b.URL = url
	}
}

// Button returns a button element identified by actionID. Value,
// style and URL appear in the payload only when set through options.
func Button(text, actionID string, opts ...ButtonOption) *slack.ButtonBlockElement {
	button := slack.NewButtonBlockElement(actionID, "",
		slack.NewTextBlockObject(slack.PlainTextType, text, false, false))
	for _, opt := range opts {
		opt(button)
	}
	return button
}

// Actions returns an actions block. Element order is preserved.
func Actions(elements ...slack.BlockElement) *slack.ActionBlock {
	return slack.NewActionBlock("", elements...)
}

// Divider returns a divider block.
func Divider() *slack.DividerBlock {
	return slack.NewDividerBlock()
}

// Context returns a context block of small mrkdwn fragments, in order.
func Context(texts ...string) *slack.ContextBlock {
	elements := make([]slack.MixedElement, 0, len(texts))
	for _, text := range texts {
		elements = append(elements, mrkdwn(text))
	}
	return slack.NewContextBlock("", elements...)
}

// InputOption customizes an input block.
type InputOption func(*slack.InputBlock)

// WithHint adds hint text beneath the input.
func WithHint(hint string) InputOption {
	return func(b *slack.InputBlock) {
		b.Hint = slack.NewTextBlockObject(slack.PlainTextType, hint, false, false)
	}
}

// Optional marks the input as not required for submission.
func Optional() InputOption {
	return func(b *slack.InputBlock) {
		b.Optional = true
	}
}

// Input returns a modal input block wrapping an input element.
func Input(blockID, label string, element slack.BlockElement, opts ...InputOption) *slack.InputBlock {
	block := slack.NewInputBlock(blockID,
		slack.NewTextBlockObject(slack.PlainTextType, label, false, false), nil, element)
	for _, opt := range opts {
		opt(block)
	}
	return block
}

// TextInputOption customizes a plain-text input element.
type TextInputOption func(*slack.PlainTextInputBlockElement)

// WithPlaceholder sets the input placeholder text.
func WithPlaceholder(placeholder string) TextInputOption {
	return func(e *slack.PlainTextInputBlockElement) {
		e.Placeholder = slack.NewTextBlockObject(slack.PlainTextType, placeholder, false, false)
	}
}

// WithInitialValue pre-fills the input.
func WithInitialValue(value string) TextInputOption {
	return func(e *slack.PlainTextInputBlockElement) {
		e.InitialValue = value
	}
}

// Multiline renders the input as a text area.
func Multiline() TextInputOption {
	return func(e *slack.PlainTextInputBlockElement) {
		e.Multiline = true
	}
}

// TextInput returns a plain-text input element.
func TextInput(actionID string, opts ...TextInputOption) *slack.PlainTextInputBlockElement {
	element := slack.NewPlainTextInputBlockElement(nil, actionID)
	for _, opt := range opts {
		opt(element)
	}
	return element
}

// SelectOption is one entry of a static select menu.
type SelectOption struct {
	Label string
	Value string
}

// SelectMenu returns a static select element. Option order is
// preserved.
func SelectMenu(actionID, placeholder string, options []SelectOption) *slack.SelectBlockElement {
	blockOptions := make([]*slack.OptionBlockObject, 0, len(options))
	for _, opt := range options {
		blockOptions = append(blockOptions, slack.NewOptionBlockObject(opt.Value,
			slack.NewTextBlockObject(slack.PlainTextType, opt.Label, false, false), nil))
	}
	return slack.NewOptionsSelectBlockElement(slack.OptTypeStatic,
		slack.NewTextBlockObject(slack.PlainTextType, placeholder, false, false),
		actionID, blockOptions...)
}

// DatePickerOption customizes a date picker element.
type DatePickerOption func(*slack.DatePickerBlockElement)

// WithInitialDate pre-selects a date (YYYY-MM-DD).
func WithInitialDate(date string) DatePickerOption {
	return func(e *slack.DatePickerBlockElement) {
		e.InitialDate = date
	}
}

// DatePicker returns a date picker element.
func DatePicker(actionID string, opts ...DatePickerOption) *slack.DatePickerBlockElement {
	element := slack.NewDatePickerBlockElement(actionID)
	element.Placeholder = slack.NewTextBlockObject(slack.PlainTextType, "Select a date", false, false)
	for _, opt := range opts {
		opt(element)
	}
	return element
}

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}
