// Package models defines domain entities for the studio tracker.
//
// The package contains three record types and their update patches:
//   - [Artist] : a billable client with an hourly rate and billing category
//   - [Session] : one unit of studio work tied to an artist and a date
//   - [PaymentRecord] : an append-only ledger entry for money received
//
// Partial updates go through [ArtistPatch] and [SessionPatch]: every field is
// a pointer and only non-nil fields are applied, replacing the dynamic
// field-map updates a looser store would use.
//
// Billing categories come from the studio's fixed client-type set
// (producao_semanal through venda_beat); pacote_horas bookings are flat-rate
// bundles priced by [PackageValues] rather than billed by elapsed time.
package models
