package cache

// Logical resource keys. Every write path that changes one of these resources
// must clear the matching key before returning.
const (
	KeyRooms            = "rooms"
	KeyBuildings        = "buildings"
	KeyInvoices         = "invoices"
	KeyTenants          = "tenants"
	KeyBuildingExpenses = "building_expenses"
	KeyUtilityReadings  = "utility_readings"
)
