// Package baccarat implements the Baccarat drawing rules and the quiz state
// machine that walks a trainee through a single hand.
//
// # Core Types
//
// Card: a playing card whose Baccarat point value is fixed when it is built.
//
// Hand: the two or three cards held by the Player or the Banker.
//
// Decision: an answer the trainee can give (BANKER WIN, DRAW, ...).
//
// Phase: the question currently asked. Phases run NaturalCheck →
// PlayerDrawCheck → BankerDrawCheck → FinalOutcome, with a shortcut to
// resolution when a natural is dealt.
//
// RoundState: the hands, phase and resolution flag of the hand in progress.
//
// # Rule Engine
//
// IsNatural, NaturalOutcome, PlayerShouldDraw, BankerShouldDraw and Winner are
// pure functions over hands. Submit and Peek use them to grade answers and to
// move a RoundState forward. The package keeps no state of its own; every
// transition receives the round and the Shoe to draw from.
package baccarat
