// Package model defines the ribbon data structures shared by the layout
// engines and the UI: tabs, contextual groups, group boxes and their
// controls, plus the control size and group box state enums.
package model
