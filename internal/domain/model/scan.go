package model

// FreeCoffeeThreshold is the counter value at which a free coffee is awarded.
const FreeCoffeeThreshold = 10

// ScanResult describes the outcome of recording a scan for a user.
type ScanResult struct {
	Username    string
	CoffeeCount int
	FreeCoffee  bool
}

// ApplyScan applies amount units to a coffee counter. Reaching or passing
// the threshold awards a free coffee and resets the counter to zero;
// overshoot past the threshold is discarded, not carried over.
func ApplyScan(count, amount int) (newCount int, freeCoffee bool) {
	newCount = count + amount
	if newCount >= FreeCoffeeThreshold {
		return 0, true
	}
	return newCount, false
}
