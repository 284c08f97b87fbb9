package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/zakbeatz/studio/internal/models"
	"github.com/zakbeatz/studio/internal/reports"
	"github.com/zakbeatz/studio/internal/shared"
)

var (
	_ list.Item = summaryItem{}
	_ list.Item = sessionItem{}
)

// summaryItem wraps [reports.Summary] to implement [list.Item].
type summaryItem struct {
	summary reports.Summary
}

func (i summaryItem) FilterValue() string { return i.summary.Artist.Name }
func (i summaryItem) Title() string {
	return fmt.Sprintf("%s — %s", i.summary.Artist.Name, models.ClientTypeNames[i.summary.Artist.Type])
}

func (i summaryItem) Description() string {
	s := i.summary
	desc := fmt.Sprintf("%s • %s", shared.FormatHours(s.Hours), shared.FormatBRL(s.Total))

	switch s.Status() {
	case reports.StatusDue:
		desc = fmt.Sprintf("%s • restante %s", desc, shared.FormatBRL(s.Remaining))
	case reports.StatusOverpaid:
		desc = fmt.Sprintf("%s • crédito %s", desc, shared.FormatBRL(-s.Remaining))
	case reports.StatusSettled:
		desc = fmt.Sprintf("%s • pago", desc)
	}
	return desc
}

// sessionItem wraps [models.Session] to implement [list.Item].
type sessionItem struct {
	session    models.Session
	artistName string
}

func (i sessionItem) FilterValue() string { return i.artistName }
func (i sessionItem) Title() string {
	return fmt.Sprintf("%s — %s", i.session.Date, i.artistName)
}

func (i sessionItem) Description() string {
	s := i.session
	if s.IsPackage {
		return fmt.Sprintf("📦 %s • %s", s.PackageType, s.Note)
	}

	desc := shared.FormatHours(s.TotalHours)
	if s.Start != "" && s.End != "" {
		desc = fmt.Sprintf("%s–%s • %s", s.Start, s.End, desc)
	}
	if s.Note != "" {
		desc = fmt.Sprintf("%s • %s", desc, s.Note)
	}
	return desc
}
