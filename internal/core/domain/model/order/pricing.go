package order

import "math"

// Pricing and payout rules. Values mirror what the checkout charges the
// customer and what the driver is paid per completed delivery; all amounts
// are rounded to cents.
const (
	// DeliveryFee is the flat delivery fee added to every order.
	DeliveryFee = 2.99

	// TaxRate is applied to the items subtotal.
	TaxRate = 0.08

	// EarningsRate is the driver's share of the order total.
	EarningsRate = 0.15

	// EarningsBase is the flat per-delivery payout added on top of the share.
	EarningsBase = 3.0

	// minutesPerKm is the travel-time factor behind the pickup ETA.
	minutesPerKm = 4.0

	// pickupBufferMinutes covers handover at the restaurant or store.
	pickupBufferMinutes = 5.0
)

// RoundToCents rounds a currency amount to two decimal places.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Subtotal sums price times quantity over a line snapshot.
func Subtotal(lines []Line) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Subtotal()
	}
	return RoundToCents(sum)
}

// ComputeTotal computes the order total charged at checkout:
// subtotal + delivery fee + tax on the subtotal. Called exactly once, at
// order creation; the result is frozen on the order afterwards.
func ComputeTotal(lines []Line) float64 {
	subtotal := Subtotal(lines)
	if subtotal == 0 {
		return 0
	}
	return RoundToCents(subtotal + DeliveryFee + subtotal*TaxRate)
}

// ComputeEarnings computes the driver payout for a completed delivery.
func ComputeEarnings(totalAmount float64) float64 {
	return RoundToCents(totalAmount*EarningsRate + EarningsBase)
}

// PickupETAMinutes estimates minutes until the driver reaches the customer
// after accepting, from the assignment distance.
func PickupETAMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm*minutesPerKm + pickupBufferMinutes))
}
