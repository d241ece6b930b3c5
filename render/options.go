package render

import (
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Option represents renderer option
type Option func(r *Renderer)

// Options represents renderer options
type Options []Option

// Apply applies options
func (o Options) Apply(r *Renderer) {
	for _, opt := range o {
		opt(r)
	}
}

// WithTag sets case format and time layout from a parsed format tag
func WithTag(tag *format.Tag) Option {
	return func(r *Renderer) {
		if tag == nil {
			return
		}
		if tag.CaseFormat != "" && tag.CaseFormat != "-" {
			r.caseFormat = text.CaseFormat(tag.CaseFormat)
		}
		switch {
		case tag.TimeLayout != "":
			r.timeLayout = tag.TimeLayout
		case tag.DateFormat != "":
			r.timeLayout = ftime.DateFormatToTimeLayout(tag.DateFormat)
		}
	}
}

// WithCaseFormat sets case format of string elements
func WithCaseFormat(caseFormat text.CaseFormat) Option {
	return func(r *Renderer) {
		r.caseFormat = caseFormat
	}
}

// WithTimeLayout sets time layout
func WithTimeLayout(layout string) Option {
	return func(r *Renderer) {
		r.timeLayout = layout
	}
}

// WithDecimal renders floating point elements as localized decimal numbers
func WithDecimal(lang language.Tag) Option {
	return func(r *Renderer) {
		r.printer = message.NewPrinter(lang)
	}
}

// WithUnknown sets text rendered for values of unsupported types
func WithUnknown(unknown string) Option {
	return func(r *Renderer) {
		r.unknown = unknown
	}
}
