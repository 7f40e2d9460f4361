// Package order holds the Order aggregate and the rules governing its status.
//
// The package includes:
//   - Order: the aggregate root, with items, notes and a single current Status
//   - Status: the closed set of lifecycle stages and their forward sequence
//   - TransitionRule and TransitionChain: independent checks run in order,
//     the first rejection wins
//   - Snapshot and Patcher: the editable document a JSON Patch is applied to
//   - StatusChanged: the event recorded whenever the status moves
//
// Status changes are decided by the chain, never by Status itself. Two chains
// are installed: NewPatchTransitionChain for client edits and expiry, and
// NewProgressTransitionChain for the kitchen moving a paid order forward.
package order
