package constants

// NSQ topics
const (
	TopicTripCompleted  = "trip.completed"
	TopicFareCalculated = "fare.calculated"
)

// NSQ channels
const (
	ChannelFareService = "fare-service"
)
