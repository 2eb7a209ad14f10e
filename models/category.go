package models

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryMap renders categories the way the frontend expects them: id -> type.
func CategoryMap(categories []Category) map[int]string {
	m := make(map[int]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
