package schema

// ContentCategoryTable represents the 'content.category' table
type ContentCategoryTable struct {
	Table     string
	ID        string
	Name      string
	Slug      string
	CreatedAt string
}

// ContentCategory is the schema definition for content.category
var ContentCategory = ContentCategoryTable{
	Table:     "content.category",
	ID:        "id",
	Name:      "name",
	Slug:      "slug",
	CreatedAt: "createdat",
}
