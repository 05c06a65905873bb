package schema

// ContentTitleTable represents the 'content.title' table
type ContentTitleTable struct {
	Table       string
	ID          string
	Name        string
	Year        string
	Description string
	CategoryID  string
	CreatedAt   string
}

// ContentTitle is the schema definition for content.title
var ContentTitle = ContentTitleTable{
	Table:       "content.title",
	ID:          "id",
	Name:        "name",
	Year:        "year",
	Description: "description",
	CategoryID:  "categoryid",
	CreatedAt:   "createdat",
}
