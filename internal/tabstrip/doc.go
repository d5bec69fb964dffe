// Package tabstrip implements the adaptive ribbon tab-strip layout engine.
// Given tab headers with their fully expanded widths, it computes the width
// each header gets under width pressure by running an ordered cascade of
// reductions: whitespace first, then label truncation, regular tabs being
// protected longer than contextual ones. The engine is pure; measuring and
// drawing belong to the host toolkit.
package tabstrip
