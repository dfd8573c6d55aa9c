// Package movies wraps the external movie-metadata API the application
// sources its catalog entries from. This file mirrors the API's search
// response shape; the application passes it through unchanged.
package movies

// Genre is a movie genre as returned by the external API.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany is a studio attached to a movie record.
type ProductionCompany struct {
	ID            int     `json:"id"`
	LogoPath      *string `json:"logo_path"`
	Name          string  `json:"name"`
	OriginCountry string  `json:"origin_country"`
}

// ProductionCountry is a country a movie was produced in.
type ProductionCountry struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// SpokenLanguage is a language spoken in a movie.
type SpokenLanguage struct {
	EnglishName string `json:"english_name"`
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
}

// Movie is a single catalog entry. Optional fields are pointers so absent
// values survive the pass-through as null rather than zero values.
type Movie struct {
	Adult               bool                `json:"adult"`
	BackdropPath        *string             `json:"backdrop_path"`
	BelongsToCollection *string             `json:"belongs_to_collection"`
	Budget              *int                `json:"budget"`
	Genres              []Genre             `json:"genres,omitempty"`
	GenreIDs            []int               `json:"genre_ids,omitempty"`
	Homepage            *string             `json:"homepage"`
	ID                  int                 `json:"id"`
	IMDbID              *string             `json:"imdb_id"`
	OriginalLanguage    string              `json:"original_language"`
	OriginalTitle       string              `json:"original_title"`
	Overview            string              `json:"overview"`
	Popularity          float64             `json:"popularity"`
	PosterPath          *string             `json:"poster_path"`
	ProductionCompanies []ProductionCompany `json:"production_companies,omitempty"`
	ProductionCountries []ProductionCountry `json:"production_countries,omitempty"`
	ReleaseDate         string              `json:"release_date"`
	Revenue             *int                `json:"revenue"`
	Runtime             *int                `json:"runtime"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages,omitempty"`
	Status              *string             `json:"status"`
	Tagline             *string             `json:"tagline"`
	Title               string              `json:"title"`
	Video               bool                `json:"video"`
	VoteAverage         float64             `json:"vote_average"`
	VoteCount           int                 `json:"vote_count"`
}

// SearchMovieResult is one page of search results.
type SearchMovieResult struct {
	Page         int     `json:"page"`
	TotalResults int     `json:"total_results"`
	TotalPages   int     `json:"total_pages"`
	Results      []Movie `json:"results"`
}
