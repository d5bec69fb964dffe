// Package cli implements the ribbonlayout command: it loads a ribbon
// definition and prints the tab strip allocation or the group box fit for
// a given width as a table or JSON.
package cli
