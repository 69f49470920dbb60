package constant

type contextKey string

// ActorKey holds the authenticated *model.Actor in a request context.
const ActorKey contextKey = "actor"

const (
	AuthCookieName   = "auth-token"
	SessionPrefix    = "session:"
	BuyerCachePrefix = "buyer:"
)
