package maker

// Moved reports whether the book moved away from the prices the bot last
// acted on. Equality is exact, no tolerance band: a single tick on either
// side triggers a rebalance, including ticks caused by the bot's own
// resting orders.
func Moved(current, last Quote) bool {
	return !current.Bid.Equal(last.Bid) || !current.Ask.Equal(last.Ask)
}
