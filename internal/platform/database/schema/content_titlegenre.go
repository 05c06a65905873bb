package schema

// ContentTitleGenreTable represents the 'content.titlegenre' join table
type ContentTitleGenreTable struct {
	Table   string
	ID      string
	TitleID string
	GenreID string
}

// ContentTitleGenre is the schema definition for content.titlegenre
var ContentTitleGenre = ContentTitleGenreTable{
	Table:   "content.titlegenre",
	ID:      "id",
	TitleID: "titleid",
	GenreID: "genreid",
}
