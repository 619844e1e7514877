package models

// Transaction types
const (
	TransactionTypeDebit  = "debit"
	TransactionTypeCredit = "credit"
)

// Rule match fields
const (
	MatchFieldDescription = "description"
	MatchFieldMerchant    = "merchant"
)

// Canonical category names used by the built-in mapping tables.
// The seeded taxonomy must contain a category whose name includes each of
// these, otherwise the corresponding mapping entry never resolves.
const (
	CategoryGroceries   = "Épicerie"
	CategoryFuel        = "Carburant"
	CategoryClothes     = "Vêtements"
	CategoryHotel       = "Hôtel"
	CategoryRestaurant  = "Restaurant"
	CategoryTransferOut = "Virement interne"
	CategoryRideHailing = "VTC"
	CategoryTrain       = "Train"
	CategoryStreaming   = "Streaming"
	CategoryElectricity = "Électricité"
	CategoryInternet    = "Internet"
	CategoryPhone       = "Téléphone"
)

// Account types
const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeInvestment = "investment"
)
