package constants

// Redis key formats
const (
	// Location store, sorted set scored by sample time
	KeyTripPoints = "trip:points:%s" // Format: trip:points:{trip_id}
	// Arrival counter, breaks ties between samples with the same timestamp
	KeyTripPointsSeq = "trip:points:%s:seq" // Format: trip:points:{trip_id}:seq

	// Fare configuration cache
	// Format: fare:cfg:matrix:{booking_type}:{vehicle_type}
	KeyFareMatrix = "fare:cfg:matrix:%s:%s"
	// Format: fare:cfg:rental:{vehicle_type}:{hours}
	KeyRentalPackage = "fare:cfg:rental:%s:%d"
	// Format: fare:cfg:outstation:{vehicle_type}
	KeyOutstationConfig = "fare:cfg:outstation:%s"
	// Format: fare:cfg:slab:{vehicle_type}
	KeySlabPackage = "fare:cfg:slab:%s"
	// Format: fare:cfg:airport:{vehicle_type}
	KeyAirportConfig = "fare:cfg:airport:%s"
	// JSON list of active zones
	KeyActiveZones = "fare:cfg:zones:active"
)
