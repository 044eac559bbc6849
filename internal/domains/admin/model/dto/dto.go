package dto

type RemoveListingResponse struct {
	RoomID string `json:"room_id"`
	// PurgedRequests counts PENDING requests dropped with the room.
	PurgedRequests int `json:"purged_requests"`
	// OrphanedBookings counts confirmed bookings whose room no longer exists.
	OrphanedBookings int `json:"orphaned_bookings"`
}
