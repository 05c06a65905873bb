package schema

// ContentGenreTable represents the 'content.genre' table
type ContentGenreTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// ContentGenre is the schema definition for content.genre
var ContentGenre = ContentGenreTable{
	Table:     "content.genre",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}
