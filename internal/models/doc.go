// Package models defines the core domain records for TipSplit.
//
// # Records
//
//   - Input: everything the user has entered (bill text, tip selection, party size)
//   - TipSelection: which tip is active, a preset or a custom percentage
//   - View: which top-level screen is shown
//
// All records are plain values. A host never mutates an Input in place; it
// replaces the whole record after each user action (see package state).
//
// # Design Principles
//
// 1. **Raw text is kept**: bill and custom tip are stored as typed, so an
// edit never loses what the user sees in the field
// 2. **Derived values are not stored**: totals are computed from an Input on
// demand by package calculator
// 3. **No persistence**: records live for a single session only
package models
