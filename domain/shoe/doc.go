// Package shoe provides the card sources used to deal Baccarat hands.
//
// Every shoe is infinite: each draw picks one of the 52 cards uniformly and
// independently of the previous draws, so duplicates are possible and no card
// is ever removed.
//
//   - Crypto draws from the Ed25519 suite's random stream.
//   - Seeded draws from a seeded math/rand source and replays the same
//     sequence for the same seed.
//   - Stacked deals a fixed list of cards first, then defers to another shoe.
package shoe
