// Package render formats type erased element values as text.
//
// Rendering is driven by a format tag, for example `format:"caseFormat=upperUnderscore,dateFormat=yyyy-MM-dd"`,
// or by explicit options. Nested iterable values render as a bracketed list.
package render
