package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/seqology"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	defaultUnknown = "<unknown>"
	invalid        = "<invalid>"
)

// Renderer renders element values as text
type Renderer struct {
	caseFormat text.CaseFormat
	timeLayout string
	printer    *message.Printer
	unknown    string
}

// Render returns text representation of value
func (r *Renderer) Render(value seqology.Value) string {
	if !value.IsValid() {
		return invalid
	}
	switch actual := value.Interface().(type) {
	case string:
		return r.formatString(actual)
	case time.Time:
		return actual.Format(r.timeLayout)
	case *time.Time:
		if actual == nil {
			return invalid
		}
		return actual.Format(r.timeLayout)
	case float64:
		return r.formatFloat(actual, 64)
	case float32:
		return r.formatFloat(float64(actual), 32)
	case bool:
		return strconv.FormatBool(actual)
	case fmt.Stringer:
		return actual.String()
	}
	switch value.Type().Type().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("%d", value.Interface())
	}
	if view, err := value.Iterable(); err == nil {
		return "[" + strings.Join(r.Elements(view), ", ") + "]"
	}
	return r.unknown
}

// Elements renders view elements in forward order
func (r *Renderer) Elements(view seqology.View) []string {
	result := make([]string, 0, view.Size())
	for _, element := range view.All() {
		result = append(result, r.Render(element))
	}
	return result
}

func (r *Renderer) formatString(value string) string {
	if !r.caseFormat.IsDefined() {
		return value
	}
	source := text.DetectCaseFormat(value)
	if !source.IsDefined() {
		return value
	}
	return source.Format(value, r.caseFormat)
}

func (r *Renderer) formatFloat(value float64, bitSize int) string {
	if r.printer != nil {
		return r.printer.Sprintf("%v", number.Decimal(value))
	}
	return strconv.FormatFloat(value, 'g', -1, bitSize)
}

// New creates a renderer
func New(opts ...Option) *Renderer {
	ret := &Renderer{timeLayout: time.RFC3339, unknown: defaultUnknown}
	Options(opts).Apply(ret)
	return ret
}

// Parse creates a renderer configured by a struct tag, i.e. `format:"caseFormat=upper"`, options are applied after the tag
func Parse(tag string, opts ...Option) (*Renderer, error) {
	formatTag, err := format.Parse(reflect.StructTag(tag))
	if err != nil {
		return nil, fmt.Errorf("invalid format tag %q: %w", tag, err)
	}
	return New(append([]Option{WithTag(formatTag)}, opts...)...), nil
}
