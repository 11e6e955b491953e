package entity

// PlaceCache stores the normalized result of a place-details lookup.
//
// Found controls the negative caching strategy for provider lookups:
//
// - true: The place ID is valid and the details are cached.
//
// - false: The place ID was queried, the provider had nothing, and it is
// safely cached as absent.
//
// This prevents repeated provider calls for IDs we already know do not
// resolve. Rows are swept after a TTL by the cache cleaner job, so staleness
// is bounded by the row's CachedAt rather than by any ambient client state.
type PlaceCache struct {
	PlaceID string `gorm:"primaryKey;column:place_id"`

	Nome                 string
	Endereco             string
	Cidade               string
	Estado               string
	CEP                  string
	Telefone             string
	Website              string
	HorarioFuncionamento string
	Latitude             *float64
	Longitude            *float64
	Rating               *float64
	TotalReviews         *int
	FotoURL              string

	Found    bool  `gorm:"default:true"`
	CachedAt int64 `gorm:"autoUpdateTime:false"`
}
