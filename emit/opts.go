package emit

// Opt configures a listing.
type Opt func(*emitter)

// WithColor turns ANSI coloring on or off. Off by default.
func WithColor(on bool) Opt {
	return func(e *emitter) { e.color = on }
}

// WithInvertedBlock controls the commented complementary-polarity
// block at the end of the listing. On by default.
func WithInvertedBlock(on bool) Opt {
	return func(e *emitter) { e.inverted = on }
}

// WithPinBlock controls the leading PIN declaration block. On by
// default.
func WithPinBlock(on bool) Opt {
	return func(e *emitter) { e.pinBlock = on }
}
