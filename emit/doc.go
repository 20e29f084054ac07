// Package emit renders analysis results as equation listings.
//
// The listing opens with the PIN declarations, then one
// sum-of-products assignment per output pin with OR terms joined by
// "#", then a commented block repeating every equation at the
// complementary polarity. Open-drain pins emit a constant assignment
// plus an .OE expression carrying the logic. Stuck pins emit 'b'
// constants.
package emit
