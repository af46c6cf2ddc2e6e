package models

// PaletteSize is the number of category colors in the app palette.
const PaletteSize = 12

// Category groups workouts by training type and carries the palette color
// used to render them.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ColorID   int    `json:"colorId"`
	SortOrder int    `json:"sortOrder"`
	IsHidden  bool   `json:"isHidden"`
	IsSystem  bool   `json:"isSystem"`
}
