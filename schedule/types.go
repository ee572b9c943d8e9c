package schedule

// PickupType is one of the six waste categories collection trucks service.
type PickupType string

const (
	Burnable PickupType = "burnable"
	Plastic  PickupType = "plastic"
	Cans     PickupType = "cans"
	Bottles  PickupType = "bottles"
	Paper    PickupType = "paper"
	Bulk     PickupType = "bulk"
)

// PickupTypes lists every valid PickupType in declaration order.
var PickupTypes = []PickupType{Burnable, Plastic, Cans, Bottles, Paper, Bulk}

// Valid reports whether t is one of the enumerated pickup types.
func (t PickupType) Valid() bool {
	for _, v := range PickupTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Pickup is a single collection entry. Day is a free-text label and may be a
// row ordinal such as "Row 3" when the source has no day column.
type Pickup struct {
	Day   string     `json:"day" validate:"required"`
	Type  PickupType `json:"type" validate:"required,oneof=burnable plastic cans bottles paper bulk"`
	Notes string     `json:"notes,omitempty"`
}

// BulkyFee is the disposal fee for one bulky item.
type BulkyFee struct {
	Item   string `json:"item" validate:"required"`
	FeeYen int    `json:"feeYen" validate:"gte=0"`
	Notes  string `json:"notes,omitempty"`
}

// Schedule is the normalized pickup schedule for a ward.
type Schedule struct {
	Ward      string     `json:"ward" validate:"required"`
	Station   string     `json:"station,omitempty"`
	Version   string     `json:"version" validate:"required"`
	Pickups   []Pickup   `json:"pickups" validate:"min=1,dive"`
	BulkyFees []BulkyFee `json:"bulkyFees,omitempty" validate:"omitempty,dive"`
}

const (
	// UnknownVersion is used when neither the resource nor the package carries a date.
	UnknownVersion = "unknown"

	SentinelDay   = "—"
	SentinelNotes = "No pickup rows found in dataset."
)

// SentinelPickup is substituted when a dataset yields no pickup rows.
func SentinelPickup() Pickup {
	return Pickup{Day: SentinelDay, Type: Bulk, Notes: SentinelNotes}
}
