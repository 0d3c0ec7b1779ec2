// Package template defines the template engine seam used to render the page
// shell that hosts form mounts. Engines live in sub-packages.
package template
