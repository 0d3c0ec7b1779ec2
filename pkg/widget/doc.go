// Package widget implements the form widget: Fields own one labelled input
// and its validation state, Forms own an ordered set of Fields, render them
// into a surface.Surface, validate them on submit and hand the validated
// label/value snapshot to a callback.
//
// Validation failures never surface as Go errors. A failed Field records an
// ErrorCode plus a localized message; the Form collects them into its error
// region and reports the outcome through the callback and the returned
// Result. Calling Value, SetValue or Submit before Render is a construction
// order bug and panics.
//
// Fields and Forms are owned by a single UI thread and are not safe for
// concurrent use.
package widget
