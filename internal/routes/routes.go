package routes

const (
	// Health
	Health = "/health"

	// ───────────────────────────────
	// Buildings
	// ───────────────────────────────
	Buildings     = "/api/v1/buildings"
	BuildingByID  = "/api/v1/buildings/{id:[0-9]+}"
	BuildingUnits = "/api/v1/buildings/{id:[0-9]+}/units"

	// ───────────────────────────────
	// Units
	// ───────────────────────────────
	Units                = "/api/v1/units"
	UnitsVacant          = "/api/v1/units/vacant"
	UnitByID             = "/api/v1/units/{id:[0-9]+}"
	UnitOccupancyHistory = "/api/v1/units/{id:[0-9]+}/occupancy-history"

	// ───────────────────────────────
	// Tenants (incl. tenancy workflow)
	// ───────────────────────────────
	Tenants           = "/api/v1/tenants"
	TenantsCurrent    = "/api/v1/tenants/current"
	TenantByID        = "/api/v1/tenants/{id:[0-9]+}"
	TenantRentHistory = "/api/v1/tenants/{id:[0-9]+}/rent-history"
	TenantsMoveIn     = "/api/v1/tenants/move-in"
	TenantsMoveOut    = "/api/v1/tenants/move-out/{unitId:[0-9]+}"

	// ───────────────────────────────
	// Rent receipts
	// ───────────────────────────────
	RentReceipts       = "/api/v1/rentreceipts"
	RentReceiptsRecord = "/api/v1/rentreceipts/record"
	RentReceiptByID    = "/api/v1/rentreceipts/{id:[0-9]+}"
	RentReceiptsByUnit = "/api/v1/rentreceipts/unit/{unitId:[0-9]+}"
)
