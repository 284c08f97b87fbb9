// Package ui implements the interactive dashboard using bubbletea's Elm architecture.
//
// Two views cover the studio's day-to-day questions:
//  1. [SummaryView] : per-artist hours, totals and outstanding balances
//  2. [SessionListView] : the session history, most recent first
//
// The [Model] implements the standard Init/Update/View pattern. Data arrives
// through a [Loader] so the dashboard stays decoupled from the repositories;
// "r" re-fetches everything, since the store has no change notifications.
//
// Keyboard navigation uses vim-style bindings (j/k, tab, r, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
