package models

// AvailabilityRecord is the wire shape of one stored availability range:
// a named trading day plus wall-clock start/end bounds. A tutor's weekly
// availability is persisted as a flat list of these records and replaced
// wholesale on every save.
type AvailabilityRecord struct {
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM"; "HH:MM:SS" tolerated on load
	EndTime   string `bson:"endTime" json:"endTime"`
}

// AddRangeRequest adds a contiguous free-time range to one day.
type AddRangeRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// EditRangeRequest rewrites the bounds of an existing range on one day.
type EditRangeRequest struct {
	Day          string `json:"day" binding:"required"`
	OldStartTime string `json:"oldStartTime" binding:"required"`
	OldEndTime   string `json:"oldEndTime" binding:"required"`
	NewStartTime string `json:"newStartTime" binding:"required"`
	NewEndTime   string `json:"newEndTime" binding:"required"`
}

// DeleteRangeRequest removes a range from one day.
type DeleteRangeRequest struct {
	Day       string `json:"day" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// ToggleSlotRequest flips a single half-hour slot. Under the hourly display
// mode the slot's whole hour flips as one unit.
type ToggleSlotRequest struct {
	Day  string `json:"day" binding:"required"`
	Time string `json:"time" binding:"required"` // start of the slot, "HH:MM"
	Mode string `json:"mode,omitempty"`          // "half-hour" (default) or "hourly"
}

// ToggleDayRequest bulk-toggles the slots visible under the supplied view
// filter. Slots outside the filter window are never touched.
type ToggleDayRequest struct {
	Day       string `json:"day" binding:"required"`
	StartHour *int   `json:"startHour,omitempty"` // defaults to 0
	EndHour   *int   `json:"endHour,omitempty"`   // exclusive; defaults to 24
	Mode      string `json:"mode,omitempty"`
}
