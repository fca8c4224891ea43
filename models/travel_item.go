package models

import "time"

// TravelItemType identifies the kind of a quote line item.
type TravelItemType string

const (
	TravelItemFlight   TravelItemType = "flight"
	TravelItemHotel    TravelItemType = "hotel"
	TravelItemActivity TravelItemType = "activity"
	TravelItemTransfer TravelItemType = "transfer"
)

// HotelDetails is the detail payload for hotel items.
type HotelDetails struct {
	City         string `bson:"city" json:"city"`
	PropertyCode string `bson:"property_code,omitempty" json:"property_code,omitempty"`
	RoomType     string `bson:"room_type,omitempty" json:"room_type,omitempty"`
	Adults       int    `bson:"adults" json:"adults"`
	Children     int    `bson:"children" json:"children"`
}

// FlightDetails is the detail payload for flight items.
type FlightDetails struct {
	Airline       string `bson:"airline,omitempty" json:"airline,omitempty"`
	FlightNumber  string `bson:"flight_number,omitempty" json:"flight_number,omitempty"`
	DepartureCity string `bson:"departure_city" json:"departure_city"`
	ArrivalCity   string `bson:"arrival_city" json:"arrival_city"`
}

// ActivityDetails is the detail payload for activity items.
type ActivityDetails struct {
	City          string  `bson:"city,omitempty" json:"city,omitempty"`
	DurationHours float64 `bson:"duration_hours,omitempty" json:"duration_hours,omitempty"`
}

// TransferDetails is the detail payload for transfer items.
type TransferDetails struct {
	PickupLocation  string `bson:"pickup_location" json:"pickup_location"`
	DropoffLocation string `bson:"dropoff_location" json:"dropoff_location"`
	VehicleType     string `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`
}

// ItemDetails is a tagged union keyed by the item type; exactly the
// payload matching TravelItem.Type is expected to be set.
type ItemDetails struct {
	Hotel    *HotelDetails    `bson:"hotel,omitempty" json:"hotel,omitempty"`
	Flight   *FlightDetails   `bson:"flight,omitempty" json:"flight,omitempty"`
	Activity *ActivityDetails `bson:"activity,omitempty" json:"activity,omitempty"`
	Transfer *TransferDetails `bson:"transfer,omitempty" json:"transfer,omitempty"`
}

// TravelItem is one line of a quote, owned exclusively by its parent quote.
type TravelItem struct {
	ID             string         `bson:"id" json:"id"`
	Type           TravelItemType `bson:"type" json:"type"`
	Name           string         `bson:"name" json:"name"`
	StartDate      time.Time      `bson:"start_date" json:"start_date"`
	EndDate        *time.Time     `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Price          float64        `bson:"price" json:"price"` // client-facing, per unit
	Quantity       int            `bson:"quantity" json:"quantity"`
	SupplierCost   *float64       `bson:"supplier_cost,omitempty" json:"supplier_cost,omitempty"` // nett cost basis
	ClientPrice    *float64       `bson:"client_price,omitempty" json:"client_price,omitempty"`   // mirrors Price, used by reconciliation
	MarkupOverride *float64       `bson:"markup_override,omitempty" json:"markup_override,omitempty"`
	Details        ItemDetails    `bson:"details" json:"details"`
}
