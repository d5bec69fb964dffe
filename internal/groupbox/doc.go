// Package groupbox implements adaptive sizing of ribbon group boxes.
//
// A tab's group boxes start in their Large state. While they do not fit,
// the steps of the tab's reduce order are applied left to right: a bare
// group name moves that group one state narrower (Large, Middle, Small,
// Collapsed) and a parenthesised name takes one intermediate scale step
// from the group's scalable controls. The resulting state cascades into
// every control through its size definition.
package groupbox
