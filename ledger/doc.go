// Package ledger keeps the roadmap of a training session: an append-only,
// bounded log of resolved hands.
//
// # Core Components
//
// Roadmap: a rolling window over the most recent resolved hands. Once the
// window is full, appending a hand drops the oldest one. Entry indexes keep
// counting across the whole session so a dropped hand never reuses an index.
//
// Entry: one resolved hand with its outcome, final totals, whether it ended
// on a natural, and the cards of both sides.
//
// # Usage
//
// Create a Roadmap with the window size, Append every resolved RoundState, and
// read Entries or Summary to draw the bead road. Nothing is written to disk.
package ledger
