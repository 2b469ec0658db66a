package constants

// Base Routes
const (
	RootPath    = "/"
	HealthPath  = "/health"
	VersionPath = "/version"
)

// Item Routes
const (
	ItemDetailPath     = "/items/{item_id}"
	ItemListPath       = "/items2/"
	ItemSummaryPath    = "/items3/{item_id}"
	ItemSearchPath     = "/items11/"
	ItemAliasPath      = "/items12/"
	ItemMultiQueryPath = "/items13/"
	ItemBoundedPath    = "/items19/{item_id}"
	ItemCreatePath     = "/items7/"
	ItemDetailedPath   = "/items16/"
	ItemReplacePath    = "/items24/{item_id}"
	ItemCookiePath     = "/items33/"
)

// Offer and Image Routes
const (
	OfferCreatePath   = "/offers1/"
	ImageMultiplePath = "/images/multiple/"
	IndexWeightsPath  = "/index-weights/"
)

// User, Model and File Routes
const (
	UserMePath      = "/users/me"
	UserDetailPath  = "/users/{user_id}"
	ModelDetailPath = "/models/{model_name}"
	FileDetailPath  = "/files/*"
)
