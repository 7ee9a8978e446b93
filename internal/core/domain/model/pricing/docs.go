// Package pricing implements the pricing engine: the pure computation that
// turns a cart of menu lines plus reward and tip inputs into a deterministic
// monetary breakdown.
//
// The computation order is fixed:
//  1. subtotal over lines with positive quantity, with the optional 10%
//     reward discount applied to the subtotal only
//  2. service charge at a fixed 8.25% of the (possibly discounted) subtotal
//  3. tip, either a percentage from a fixed set or a custom amount that
//     always overrides the percentage
//  4. grand total as the exact sum of the three
//
// Arithmetic stays unrounded throughout; rounding to cents happens only when
// amounts are rendered for display.
package pricing
