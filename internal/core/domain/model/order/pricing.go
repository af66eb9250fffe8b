package order

// Pricing constants. All arithmetic is integer truncation (floor toward zero
// on the non-negative inputs guaranteed by Item and Route validation), so the
// same inputs always price identically.
const (
	// pointsPerKm is the base rate for both cost and reward.
	pointsPerKm = 10

	// weightSurchargePerKg is charged for every kilogram above the first.
	weightSurchargePerKg = 5

	// minDeliveryCost is the floor for what a sender pays.
	minDeliveryCost = 10

	// minTrustReward is the floor for what a hunter earns.
	minTrustReward = 5
)

// DeliveryCost calculates the points a sender pays to post an order.
//
// The price is distance-based (10 points per km), with a weight surcharge of
// 5 points per kg above 1 kg and a 20% fragile-handling surcharge applied to
// the running total. The result never drops below 10 points.
//
// Pure and deterministic; safe to call from any goroutine.
func DeliveryCost(distanceKm float64, weightKg float64, fragile bool) int {
	cost := int(distanceKm * pointsPerKm)

	if weightKg > 1 {
		cost += int((weightKg - 1) * weightSurchargePerKg)
	}

	if fragile {
		cost = cost * 12 / 10
	}

	if cost < minDeliveryCost {
		return minDeliveryCost
	}
	return cost
}

// TrustReward calculates the points a hunter earns for completing a delivery.
//
// The reward is distance-based (10 points per km) with a 50% bonus for
// fragile items. The result never drops below 5 points.
//
// Pure and deterministic; safe to call from any goroutine.
func TrustReward(distanceKm float64, fragile bool) int {
	reward := int(distanceKm * pointsPerKm)

	if fragile {
		reward = reward * 3 / 2
	}

	if reward < minTrustReward {
		return minTrustReward
	}
	return reward
}
