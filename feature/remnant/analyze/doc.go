// Package analyze reconciles the WASON and APOPLUS content of each site
// bucket and decides whether the site carries APO remnants.
//
// For every bucket the analyzer indexes the och-inst rows in an accepted
// state, extracts the site's own call records, infers whether traffic ids are
// the call id itself (direct) or the call id shifted by 24 bits (shifted),
// and compares both sides as multisets of (traffic, connection) pairs with
// core/reconcile:
//
//   - match: nothing highlighted.
//   - surplus: the och-inst rows not backed by a call are highlighted.
//   - divergent: call lines and rows whose pair exists on one side only are
//     highlighted.
//   - shortfall: not flagged.
//
// A site without call records is reported clean.
package analyze
