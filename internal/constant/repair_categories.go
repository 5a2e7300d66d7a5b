package constant

// RepairCategories is the fixed intake catalog. Order matters: the category
// menu is emitted to the client in declaration order.
var RepairCategories = []string{
	"Bathroom and Toilet",
	"Kitchen",
	"Heating and boiler",
	"Water and Leaks",
	"Doors, Garages and Locks",
	"Internal floors, walls and ceilings",
	"Lighting",
	"Window",
	"Exterior and Garden",
	"Laundry",
	"Furniture",
	"Electricity",
	"Hot Water",
	"Alarms and Smoke Detectors",
	"Pests/Vermin",
	"Roof",
	"Communal/Shared Facilities",
	"Audiovisual",
	"Utility Meters",
	"Internet",
	"Stairs",
	"Property services",
	"Smell Gas?",
	"Air Conditioning",
	"Smell Oil?",
	"Fire",
	"Capex",
	"Property Inspection",
	"Other",
}
