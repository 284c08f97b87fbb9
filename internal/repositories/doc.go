// Package repositories implements persistence for the studio's domain entities.
//
// Artist and session data lives in the SQLite snapshot managed by the store
// package; every mutation is written through before the call returns.
// Key implementations:
//   - [ArtistRepository] : artist CRUD with cascade delete of the artist's sessions
//   - [SessionRepository] : session CRUD with captured hourly rates and recomputed durations
//   - [PaymentLedger] : append-only payment history, one JSON file per artist outside the snapshot
//
// Updates take typed patch structs (see [models.ArtistPatch] and
// [models.SessionPatch]); only non-nil fields are applied. Mutations against
// unknown ids are uniform silent no-ops. The one exception is creating a
// session for an artist that does not exist, which is an error because it
// would produce a dangling reference.
package repositories
