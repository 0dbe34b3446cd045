// Package report renders pair-matching results for people: a plain-text
// listing in the classic console form, and an HTML scatter chart for
// eyeballing how the matches spread over angle and spacing ratio.
//
// Both renderers write to an io.Writer and hold no state; the core
// stays silent and the front end decides where output goes.
package report
