// Package reports derives read-only views from a ledger snapshot: the
// general journal, per-account ledgers, the balance sheet, the trial
// balance and the searchable transaction list.
//
// Every function is pure over its ledger.Snapshot argument. Callers take a
// fresh snapshot after each successful posting and rebuild whichever views
// they display. Reports over an empty ledger return empty slices and zero
// totals, never an error.
package reports
