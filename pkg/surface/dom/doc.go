// Package dom provides an in-memory HTML document that satisfies
// surface.Surface. It is built on golang.org/x/net/html so a rendered form can
// be serialised, parsed back, clicked and typed into from Go code.
package dom
